// Package nn implements the fixed-topology feed-forward networks evolved by
// package genetic, and their flat parameter encoding.
//
// The flat encoding is layer-major, then neuron-major, and for each neuron
// its bias followed by its weights in input order. Data and FromData are
// exact inverses for a given Topology.
package nn
