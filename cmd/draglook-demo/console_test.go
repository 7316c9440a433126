package main

import (
	"testing"

	"github.com/seqsense/draglook"
	"github.com/seqsense/draglook/dom"
	"github.com/seqsense/draglook/dom/domtest"
	"github.com/seqsense/draglook/hmd"
	"github.com/seqsense/draglook/scene"
)

func newTestConsole(t *testing.T) (*console, *domtest.Surface) {
	t.Helper()
	s := scene.New(scene.NewRegistry(), nil)
	surface := domtest.NewSurface(800)
	s.SetCanvas(surface)
	cam := s.NewEntity("camera")
	c, err := draglook.New(cam, s, hmd.NewStatic(hmd.IdentityPose()))
	if err != nil {
		t.Fatal(err)
	}
	c.Init()
	c.Update("")
	c.Play()
	return &console{controls: c, camera: cam}, surface
}

func TestConsole(t *testing.T) {
	c, surface := newTestConsole(t)

	testCases := []struct {
		line     string
		expected string
		err      error
	}{
		{line: "", expected: ""},
		{line: "enabled", expected: "1.000"},
		{line: "enabled 0", expected: "0.000"},
		{line: "enabled 1", expected: "1.000"},
		{line: "enabled 1 2", err: errArgumentNumber},
		{line: "position 1 2 3", expected: "1.000 2.000 3.000"},
		{line: "position", expected: "1.000 2.000 3.000"},
		{line: "position 1", err: errArgumentNumber},
		{line: "rotation", expected: "0.000 0.000 0.000"},
		{line: "drag", expected: "0.000 0.000 0.000"},
		{line: "zeroed", expected: "0.000 0.000 0.000 0.000 1.000"},
		{line: "fly", err: errInvalidCommand},
	}
	for _, tt := range testCases {
		res, err := c.Run(tt.line)
		if err != tt.err {
			t.Errorf("%q: expected error: %v, got: %v", tt.line, tt.err, err)
			continue
		}
		if res != tt.expected {
			t.Errorf("%q: expected: %q, got: %q", tt.line, tt.expected, res)
		}
	}

	surface.MouseDown(dom.MouseEvent{})
	surface.MouseMove(dom.MouseEvent{MovementX: 500, MovementY: -250, HasMovement: true})
	if res, _ := c.Run("drag"); res != "1.000 -0.500 1.000" {
		t.Errorf("Expected drag state to be reported, got: %q", res)
	}
}
