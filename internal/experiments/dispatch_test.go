package experiments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalersAgreeWithSwitch(t *testing.T) {
	all := []scaler{
		byTwo{}, byThree{}, byFour{}, byFive{},
		bySix{}, bySeven{}, byEight{}, byNine{},
	}

	for _, s := range all {
		assert.Equal(t, s.scale(10), scaleBySwitch(s, 10))
	}
}

func TestFibForms(t *testing.T) {
	for n := int64(0); n < 15; n++ {
		assert.Equal(t, fibIterative(n), fibRecursive(n), "n=%d", n)
	}
}

func TestNativeSumLoop(t *testing.T) {
	assert.Equal(t, 4950, nativeSumLoop(100))
}
