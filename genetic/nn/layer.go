package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/baldhumanity/genetic-go/genetic"
)

// Neuron computes max(0, bias + Σ inputs[i]*weights[i]).
type Neuron struct {
	bias    float32
	weights []float32
}

// NewNeuron creates a neuron from a copy of weights.
func NewNeuron(bias float32, weights []float32) Neuron {
	return Neuron{bias: bias, weights: append([]float32(nil), weights...)}
}

// Bias returns the neuron's bias.
func (n Neuron) Bias() float32 { return n.bias }

// Weights returns a copy of the neuron's input weights.
func (n Neuron) Weights() []float32 { return append([]float32(nil), n.weights...) }

// Propagate evaluates the neuron. len(inputs) must equal the number of weights.
func (n Neuron) Propagate(inputs []float32) (float32, error) {
	if len(inputs) != len(n.weights) {
		return 0, fmt.Errorf("neuron has %d weights, got %d inputs: %w", len(n.weights), len(inputs), genetic.ErrArityMismatch)
	}
	var sum float32
	for i, in := range inputs {
		sum += in * n.weights[i]
	}
	return max(0, n.bias+sum), nil
}

// Layer is an ordered set of neurons sharing the same inputs.
type Layer struct {
	inputSize int
	neurons   []Neuron
}

// NewLayer groups neurons into a layer. All neurons must have the same number of weights.
func NewLayer(neurons []Neuron) (Layer, error) {
	if len(neurons) == 0 {
		return Layer{}, fmt.Errorf("%w: layer has no neurons", ErrInvalidTopology)
	}
	inputSize := len(neurons[0].weights)
	for i, n := range neurons {
		if len(n.weights) != inputSize {
			return Layer{}, fmt.Errorf("neuron %d has %d weights, expected %d: %w", i, len(n.weights), inputSize, genetic.ErrArityMismatch)
		}
	}
	return Layer{inputSize: inputSize, neurons: append([]Neuron(nil), neurons...)}, nil
}

// InputSize is the number of inputs the layer expects.
func (l Layer) InputSize() int { return l.inputSize }

// Neurons returns the layer's neurons.
func (l Layer) Neurons() []Neuron { return l.neurons }

// Propagate returns one output per neuron, in order.
func (l Layer) Propagate(inputs []float32) ([]float32, error) {
	if len(inputs) != l.inputSize {
		return nil, fmt.Errorf("layer expects %d inputs, got %d: %w", l.inputSize, len(inputs), genetic.ErrArityMismatch)
	}
	outputs := make([]float32, len(l.neurons))
	for i, neuron := range l.neurons {
		out, err := neuron.Propagate(inputs)
		if err != nil {
			return nil, fmt.Errorf("neuron %d: %w", i, err)
		}
		outputs[i] = out
	}
	return outputs, nil
}

func randomLayer(rng *rand.Rand, inputSize, outputSize int) Layer {
	neurons := make([]Neuron, outputSize)
	for i := range neurons {
		neurons[i] = randomNeuron(rng, inputSize)
	}
	return Layer{inputSize: inputSize, neurons: neurons}
}

func randomNeuron(rng *rand.Rand, inputSize int) Neuron {
	bias := uniform(rng)
	weights := make([]float32, inputSize)
	for i := range weights {
		weights[i] = uniform(rng)
	}
	return Neuron{bias: bias, weights: weights}
}

// uniform draws from [-1, 1).
func uniform(rng *rand.Rand) float32 {
	return rng.Float32()*2 - 1
}

func layerFromData(inputSize, outputSize int, r *dataReader) (Layer, error) {
	neurons := make([]Neuron, outputSize)
	for i := range neurons {
		bias, err := r.next()
		if err != nil {
			return Layer{}, fmt.Errorf("bias of neuron %d: %w", i, err)
		}
		weights := make([]float32, inputSize)
		for j := range weights {
			if weights[j], err = r.next(); err != nil {
				return Layer{}, fmt.Errorf("weight %d of neuron %d: %w", j, i, err)
			}
		}
		neurons[i] = Neuron{bias: bias, weights: weights}
	}
	return Layer{inputSize: inputSize, neurons: neurons}, nil
}
