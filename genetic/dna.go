package genetic

import (
	"fmt"
	"math"
	"strings"
)

const (
	dnaBase      = 52
	dnaSeparator = "-"
	// Genes are shifted by dnaOffset and quantized to 1/dnaScale before encoding,
	// so anything below -dnaOffset saturates to the smallest token.
	dnaOffset = 1000.0
	dnaScale  = 1000.0
)

// EncodeDNA renders the chromosome as a DNA string: one base-52 token per
// gene (a-z = 0..25, A-Z = 26..51, most significant digit first), joined by
// '-'. Encoding is lossy below 0.001.
func (c Chromosome) EncodeDNA() string {
	var sb strings.Builder
	for i, g := range c.genes {
		if i > 0 {
			sb.WriteString(dnaSeparator)
		}
		sb.WriteString(encodeToken(quantizeGene(g)))
	}
	return sb.String()
}

// DecodeDNA parses a DNA string produced by EncodeDNA. The empty string
// decodes to an empty chromosome.
func DecodeDNA(dna string) (Chromosome, error) {
	if dna == "" {
		return Chromosome{genes: []float32{}}, nil
	}
	tokens := strings.Split(dna, dnaSeparator)
	genes := make([]float32, len(tokens))
	for i, token := range tokens {
		v, err := decodeToken(token)
		if err != nil {
			return Chromosome{}, fmt.Errorf("failed to decode gene %d: %w", i, err)
		}
		genes[i] = float32(float64(v)/dnaScale - dnaOffset)
	}
	return Chromosome{genes: genes}, nil
}

// MarshalText implements encoding.TextMarshaler using the DNA codec.
func (c Chromosome) MarshalText() ([]byte, error) {
	return []byte(c.EncodeDNA()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the DNA codec.
func (c *Chromosome) UnmarshalText(text []byte) error {
	decoded, err := DecodeDNA(string(text))
	if err != nil {
		return err
	}
	*c = decoded
	return nil
}

func quantizeGene(g float32) uint64 {
	v := math.Round((float64(g) + dnaOffset) * dnaScale)
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(v)
}

func encodeToken(v uint64) string {
	// 12 base-52 digits cover the whole uint64 range.
	var buf [12]byte
	i := len(buf)
	for {
		i--
		buf[i] = dnaDigit(v % dnaBase)
		v /= dnaBase
		if v == 0 {
			break
		}
	}
	return string(buf[i:])
}

func decodeToken(token string) (uint64, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: empty token", ErrInvalidDNA)
	}
	var v uint64
	for i := 0; i < len(token); i++ {
		d, ok := dnaValue(token[i])
		if !ok {
			return 0, fmt.Errorf("%w: unexpected character %q at position %d of token %q", ErrInvalidDNA, token[i], i, token)
		}
		if v > (math.MaxUint64-d)/dnaBase {
			return 0, fmt.Errorf("%w: token %q overflows", ErrInvalidDNA, token)
		}
		v = v*dnaBase + d
	}
	return v, nil
}

func dnaDigit(d uint64) byte {
	if d < 26 {
		return byte('a' + d)
	}
	return byte('A' + d - 26)
}

func dnaValue(c byte) (uint64, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return uint64(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 26, true
	}
	return 0, false
}
