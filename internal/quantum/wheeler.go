package quantum

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"
)

// Port names of the Mach-Zehnder network.
const (
	PortSource    = "source"
	PortArmA      = "arm-a"
	PortArmB      = "arm-b"
	PortDetector1 = "d1"
	PortDetector2 = "d2"
)

// DelayedChoice is a Mach-Zehnder interferometer whose second beam
// splitter is inserted or removed after the photon is already in flight.
// With the splitter in place the detectors see interference; without it
// they see which-path statistics, no matter when the choice was made.
type DelayedChoice struct {
	// Phase is the extra phase on arm A, in radians.
	Phase float64
}

// Probabilities returns the detection probabilities at both detectors.
// closed means the second beam splitter is present.
func (d DelayedChoice) Probabilities(closed bool) (p1, p2 float64, err error) {
	in, err := d.build(closed)
	if err != nil {
		return 0, 0, err
	}

	p1, err = in.Probability(PortSource, PortDetector1)
	if err != nil {
		return 0, 0, errors.Wrap(err, "detector 1")
	}

	p2, err = in.Probability(PortSource, PortDetector2)
	if err != nil {
		return 0, 0, errors.Wrap(err, "detector 2")
	}

	return p1, p2, nil
}

func (d DelayedChoice) build(closed bool) (*Interferometer, error) {
	in := NewInterferometer()

	for _, port := range []string{PortSource, PortArmA, PortArmB, PortDetector1, PortDetector2} {
		if err := in.AddPort(port); err != nil {
			return nil, err
		}
	}

	// First beam splitter: transmission is real, reflection picks up i.
	t := complex(1/math.Sqrt2, 0)
	r := complex(0, 1/math.Sqrt2)
	phase := cmplx.Exp(complex(0, d.Phase))

	if err := in.Connect(PortSource, PortArmA, t); err != nil {
		return nil, err
	}
	if err := in.Connect(PortSource, PortArmB, r); err != nil {
		return nil, err
	}

	if closed {
		// Second splitter recombines the arms; arm A carries the phase.
		if err := in.Connect(PortArmA, PortDetector1, t*phase); err != nil {
			return nil, err
		}
		if err := in.Connect(PortArmA, PortDetector2, r*phase); err != nil {
			return nil, err
		}
		if err := in.Connect(PortArmB, PortDetector1, r); err != nil {
			return nil, err
		}
		if err := in.Connect(PortArmB, PortDetector2, t); err != nil {
			return nil, err
		}

		return in, nil
	}

	// Open configuration: each arm flies straight into its own detector.
	if err := in.Connect(PortArmA, PortDetector1, phase); err != nil {
		return nil, err
	}
	if err := in.Connect(PortArmB, PortDetector2, complex(1, 0)); err != nil {
		return nil, err
	}

	return in, nil
}
