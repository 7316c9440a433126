package main

import (
	"bytes"
	"testing"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

func TestReadPoints(t *testing.T) {
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version: 0.7,
			Fields:  []string{"x", "y", "z"},
			Size:    []int{4, 4, 4},
			Type:    []string{"F", "F", "F"},
			Count:   []int{1, 1, 1},
			Width:   2,
			Height:  1,

			Viewpoint: []float32{0, 0, 0, 1, 0, 0, 0},
		},
		Points: 2,
	}
	pp.Data = make([]byte, 2*pp.Stride())
	it, err := pp.Vec3Iterator()
	if err != nil {
		t.Fatal(err)
	}
	it.SetVec3(mat.Vec3{1, 2, 3})
	it.Incr()
	it.SetVec3(mat.Vec3{4, 5, 6})

	var b bytes.Buffer
	if err := pc.Marshal(pp, &b); err != nil {
		t.Fatal(err)
	}

	buf, err := readPoints(&b)
	if err != nil {
		t.Fatal(err)
	}
	expected := []float32{1, 2, 3, 4, 5, 6}
	if len(buf) != len(expected) {
		t.Fatalf("Expected %d values, got %d", len(expected), len(buf))
	}
	for i := range expected {
		if buf[i] != expected[i] {
			t.Errorf("Value %d: expected: %f, got: %f", i, expected[i], buf[i])
		}
	}
}

func TestGridPoints(t *testing.T) {
	buf := gridPoints(2, 0.5)
	if len(buf) != 3*25 {
		t.Fatalf("Expected 75 values, got %d", len(buf))
	}
	if buf[0] != -1 || buf[1] != 0 || buf[2] != -1 {
		t.Errorf("First point must be the corner, got: %v", buf[:3])
	}
	for i := 1; i < len(buf); i += 3 {
		if buf[i] != 0 {
			t.Fatalf("Grid must be on the floor, got y=%f", buf[i])
		}
	}
}
