package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBinIndex checks the snap only absorbs rounding drift: values that
// compute a few ulps below a boundary snap up, values a real fraction of a
// window below it keep their floor bin however large the bin number.
func TestBinIndex(t *testing.T) {
	cases := []struct {
		name          string
		v, lo, window float64
		want          int
	}{
		{"on first boundary", 0.1, 0.1, 0.1, 0},
		{"drift below 2", 0.3, 0.1, 0.1, 2},
		{"drift below 7", 0.7, 0, 0.1, 7},
		{"drift below 3", 1.2, 0, 0.4, 3},
		{"exact integer", 5, 0, 1, 5},
		{"just inside first bin", 0.9999, 0, 1, 0},
		{"near top of bin 1e6", 1e6 + 0.9995, 0, 1, 1000000},
		{"near top of bin 1e7", 1e7 + 0.995, 0, 1, 10000000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, binIndex(tc.v, tc.lo, tc.window))
		})
	}
}
