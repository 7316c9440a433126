package main

import (
	"io"

	"github.com/seqsense/pcgol/pc"
)

// readPoints decodes a PCD stream into packed xyz coordinates.
func readPoints(r io.Reader) ([]float32, error) {
	pp, err := pc.Unmarshal(r)
	if err != nil {
		return nil, err
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	buf := make([]float32, 0, 3*pp.Points)
	for ; it.IsValid(); it.Incr() {
		v := it.Vec3()
		buf = append(buf, v[0], v[1], v[2])
	}
	return buf, nil
}

// gridPoints returns a floor grid of (2n+1)^2 points on the y=0 plane.
func gridPoints(n int, spacing float32) []float32 {
	buf := make([]float32, 0, 3*(2*n+1)*(2*n+1))
	for i := -n; i <= n; i++ {
		for j := -n; j <= n; j++ {
			buf = append(buf, float32(i)*spacing, 0, float32(j)*spacing)
		}
	}
	return buf
}
