package nn

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/baldhumanity/genetic-go/genetic"
)

var (
	// ErrInvalidTopology is returned for topologies with fewer than two layers
	// or a non-positive layer width.
	ErrInvalidTopology = errors.New("invalid topology")
	// ErrDataLeftover is returned when flat data outlasts the topology. It
	// matches genetic.ErrDataExhausted as well.
	ErrDataLeftover = fmt.Errorf("%w: leftover values", genetic.ErrDataExhausted)
)

// Topology lists layer widths, input width first. A network built from it
// has len(t)-1 trainable layers.
type Topology []int

// Validate checks that the topology can describe a network.
func (t Topology) Validate() error {
	if len(t) < 2 {
		return fmt.Errorf("%w: need at least 2 layer widths, got %d", ErrInvalidTopology, len(t))
	}
	for i, width := range t {
		if width <= 0 {
			return fmt.Errorf("%w: layer %d has width %d", ErrInvalidTopology, i, width)
		}
	}
	return nil
}

// ParameterCount returns the length of the flat data for this topology:
// one bias plus one weight per input, for every neuron.
func (t Topology) ParameterCount() int {
	count := 0
	for i := 1; i < len(t); i++ {
		count += t[i] * (t[i-1] + 1)
	}
	return count
}

// Network is a feed-forward stack of fully connected ReLU layers.
type Network struct {
	layers []Layer
}

// NewNetwork assembles a network from layers. Each layer's input width must
// match the previous layer's neuron count.
func NewNetwork(layers []Layer) (*Network, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: network has no layers", ErrInvalidTopology)
	}
	for i := 1; i < len(layers); i++ {
		if layers[i].InputSize() != len(layers[i-1].neurons) {
			return nil, fmt.Errorf("layer %d expects %d inputs, previous layer has %d neurons: %w",
				i, layers[i].InputSize(), len(layers[i-1].neurons), genetic.ErrArityMismatch)
		}
	}
	return &Network{layers: layers}, nil
}

// Random builds a network whose biases and weights are drawn uniformly from
// the half-open range [-1, 1), neuron by neuron, bias first.
func Random(rng *rand.Rand, topology Topology) (*Network, error) {
	if err := topology.Validate(); err != nil {
		return nil, err
	}
	layers := make([]Layer, len(topology)-1)
	for i := range layers {
		layers[i] = randomLayer(rng, topology[i], topology[i+1])
	}
	return &Network{layers: layers}, nil
}

// FromData rebuilds a network from flat data in the order Data produces it.
// The data length must equal topology.ParameterCount().
func FromData(topology Topology, data []float32) (*Network, error) {
	if err := topology.Validate(); err != nil {
		return nil, err
	}
	r := &dataReader{data: data}
	layers := make([]Layer, len(topology)-1)
	for i := range layers {
		layer, err := layerFromData(topology[i], topology[i+1], r)
		if err != nil {
			return nil, fmt.Errorf("failed to hydrate layer %d: %w", i, err)
		}
		layers[i] = layer
	}
	if r.remaining() > 0 {
		return nil, fmt.Errorf("%d of %d values unused: %w", r.remaining(), len(data), ErrDataLeftover)
	}
	return &Network{layers: layers}, nil
}

// FromChromosome rebuilds a network from an evolved chromosome.
func FromChromosome(topology Topology, c genetic.Chromosome) (*Network, error) {
	return FromData(topology, c.Genes())
}

// Propagate feeds inputs through every layer and returns the last layer's outputs.
func (n *Network) Propagate(inputs []float32) ([]float32, error) {
	for i, layer := range n.layers {
		outputs, err := layer.Propagate(inputs)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		inputs = outputs
	}
	return inputs, nil
}

// Data flattens the network: layer by layer, neuron by neuron, bias then weights.
func (n *Network) Data() []float32 {
	data := make([]float32, 0, n.Topology().ParameterCount())
	for _, layer := range n.layers {
		for _, neuron := range layer.neurons {
			data = append(data, neuron.bias)
			data = append(data, neuron.weights...)
		}
	}
	return data
}

// Chromosome flattens the network into a chromosome.
func (n *Network) Chromosome() genetic.Chromosome {
	return genetic.NewChromosome(n.Data())
}

// Topology reports the layer widths, input width first.
func (n *Network) Topology() Topology {
	if len(n.layers) == 0 {
		return Topology{}
	}
	t := make(Topology, 0, len(n.layers)+1)
	t = append(t, n.layers[0].InputSize())
	for _, layer := range n.layers {
		t = append(t, len(layer.neurons))
	}
	return t
}

// Layers returns the network's layers.
func (n *Network) Layers() []Layer {
	return n.layers
}

type dataReader struct {
	data []float32
	pos  int
}

func (r *dataReader) next() (float32, error) {
	if r.pos >= len(r.data) {
		return 0, fmt.Errorf("needed value %d, only %d available: %w", r.pos+1, len(r.data), genetic.ErrDataExhausted)
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

func (r *dataReader) remaining() int {
	return len(r.data) - r.pos
}
