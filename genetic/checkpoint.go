package genetic

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

const checkpointHeader = "genetic-go checkpoint v1"

// SaveCheckpoint writes a generation's chromosomes to filePath as gzip
// compressed text: a header, a "generation N size M" line and one DNA string
// per chromosome. Genes are stored at DNA precision (0.001).
func SaveCheckpoint(filePath string, generation int, chromosomes []Chromosome) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint file '%s': %w", filePath, err)
	}
	defer file.Close()

	if err := WriteCheckpoint(file, generation, chromosomes); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close checkpoint file '%s': %w", filePath, err)
	}
	return nil
}

// WriteCheckpoint writes the checkpoint format to w.
func WriteCheckpoint(w io.Writer, generation int, chromosomes []Chromosome) error {
	gzWriter := gzip.NewWriter(w)
	bw := bufio.NewWriter(gzWriter)

	fmt.Fprintln(bw, checkpointHeader)
	fmt.Fprintf(bw, "generation %d size %d\n", generation, len(chromosomes))
	for _, c := range chromosomes {
		bw.WriteString(c.EncodeDNA())
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to encode checkpoint: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to compress checkpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint reads a checkpoint written by SaveCheckpoint.
func LoadCheckpoint(filePath string) (int, []Chromosome, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to open checkpoint file '%s': %w", filePath, err)
	}
	defer file.Close()
	return ReadCheckpoint(file)
}

// ReadCheckpoint parses the checkpoint format from r.
func ReadCheckpoint(r io.Reader) (int, []Chromosome, error) {
	gzReader, err := gzip.NewReader(r)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create gzip reader for checkpoint: %w", err)
	}
	defer gzReader.Close()

	scanner := bufio.NewScanner(gzReader)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return 0, nil, fmt.Errorf("checkpoint: missing header: %w", scanErr(scanner))
	}
	if scanner.Text() != checkpointHeader {
		return 0, nil, fmt.Errorf("checkpoint: unexpected header %q", scanner.Text())
	}
	if !scanner.Scan() {
		return 0, nil, fmt.Errorf("checkpoint: missing generation line: %w", scanErr(scanner))
	}
	var generation, size int
	if _, err := fmt.Sscanf(scanner.Text(), "generation %d size %d", &generation, &size); err != nil {
		return 0, nil, fmt.Errorf("checkpoint: malformed generation line %q: %w", scanner.Text(), err)
	}
	if size < 0 {
		return 0, nil, fmt.Errorf("checkpoint: negative size %d", size)
	}

	chromosomes := make([]Chromosome, 0, min(size, 1024))
	for len(chromosomes) < size {
		if !scanner.Scan() {
			return 0, nil, fmt.Errorf("checkpoint: expected %d chromosomes, found %d: %w", size, len(chromosomes), scanErr(scanner))
		}
		c, err := DecodeDNA(scanner.Text())
		if err != nil {
			return 0, nil, fmt.Errorf("checkpoint: chromosome %d: %w", len(chromosomes), err)
		}
		chromosomes = append(chromosomes, c)
	}
	return generation, chromosomes, nil
}

func scanErr(scanner *bufio.Scanner) error {
	if err := scanner.Err(); err != nil {
		return err
	}
	return io.ErrUnexpectedEOF
}
