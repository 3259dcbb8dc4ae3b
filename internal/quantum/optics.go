// Package quantum holds the two physics-demonstration toys: a Wheeler
// delayed-choice interferometer and a delayed-choice quantum eraser.
// They share nothing with the benchmark corpus beyond living in the same
// repo, which is the point.
package quantum

import (
	"math/cmplx"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
)

// Interferometer is a network of optical elements. Vertices are ports,
// edges carry the complex amplitude an element contributes along that arm.
// The amplitude between two ports is the sum over all directed paths of
// the product of edge amplitudes, which is exactly the two-slit sum.
type Interferometer struct {
	g graph.Graph[string, string]
}

// NewInterferometer creates an empty element network.
func NewInterferometer() *Interferometer {
	return &Interferometer{
		g: graph.New(graph.StringHash, graph.Directed(), graph.Acyclic()),
	}
}

// AddPort adds a named port.
func (in *Interferometer) AddPort(name string) error {
	err := in.g.AddVertex(name)
	if err != nil {
		return errors.Wrapf(err, "unable to add port %s", name)
	}

	return nil
}

// Connect adds an element between two ports with the given amplitude.
func (in *Interferometer) Connect(from, to string, amplitude complex128) error {
	err := in.g.AddEdge(from, to, graph.EdgeData(amplitude))
	if err != nil {
		return errors.Wrapf(err, "unable to connect %s to %s", from, to)
	}

	return nil
}

// Amplitude sums the contributions of every path between two ports.
func (in *Interferometer) Amplitude(from, to string) (complex128, error) {
	paths, err := graph.AllPathsBetween(in.g, from, to)
	if err != nil {
		return 0, errors.Wrapf(err, "unable to enumerate paths from %s to %s", from, to)
	}

	var total complex128
	for _, path := range paths {
		contribution := complex(1, 0)
		for i := 0; i+1 < len(path); i++ {
			edge, err := in.g.Edge(path[i], path[i+1])
			if err != nil {
				return 0, errors.Wrapf(err, "unable to read element %s -> %s", path[i], path[i+1])
			}

			amplitude, ok := edge.Properties.Data.(complex128)
			if !ok {
				return 0, errors.Errorf("element %s -> %s has no amplitude", path[i], path[i+1])
			}
			contribution *= amplitude
		}
		total += contribution
	}

	return total, nil
}

// Probability is the squared magnitude of the port-to-port amplitude.
func (in *Interferometer) Probability(from, to string) (float64, error) {
	amplitude, err := in.Amplitude(from, to)
	if err != nil {
		return 0, err
	}

	mag := cmplx.Abs(amplitude)

	return mag * mag, nil
}
