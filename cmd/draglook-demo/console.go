package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/seqsense/pcgol/mat"
)

type controlsState interface {
	Enabled() bool
	SetEnabled(bool)
	Yaw() float64
	Pitch() float64
	Dragging() bool
	ZeroBaseline() (mgl32.Quat, bool)
}

type cameraState interface {
	Position() mat.Vec3
	SetPosition(mat.Vec3)
	Rotation() mat.Vec3
}

type console struct {
	controls controlsState
	camera   cameraState
}

var errArgumentNumber = errors.New("invalid number of arguments")
var errInvalidCommand = errors.New("invalid command")

func boolToFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

var consoleCommands = map[string]func(c *console, args []float32) ([][]float32, error){
	"enabled": func(c *console, args []float32) ([][]float32, error) {
		switch len(args) {
		case 0:
		case 1:
			c.controls.SetEnabled(args[0] != 0)
		default:
			return nil, errArgumentNumber
		}
		return [][]float32{{boolToFloat(c.controls.Enabled())}}, nil
	},
	"rotation": func(c *console, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		r := c.camera.Rotation()
		return [][]float32{{r[0], r[1], r[2]}}, nil
	},
	"position": func(c *console, args []float32) ([][]float32, error) {
		switch len(args) {
		case 0:
		case 3:
			c.camera.SetPosition(mat.Vec3{args[0], args[1], args[2]})
		default:
			return nil, errArgumentNumber
		}
		p := c.camera.Position()
		return [][]float32{{p[0], p[1], p[2]}}, nil
	},
	"drag": func(c *console, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return [][]float32{{
			float32(c.controls.Yaw()),
			float32(c.controls.Pitch()),
			boolToFloat(c.controls.Dragging()),
		}}, nil
	},
	"zeroed": func(c *console, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		q, zeroed := c.controls.ZeroBaseline()
		return [][]float32{{boolToFloat(zeroed), q.V[0], q.V[1], q.V[2], q.W}}, nil
	},
}

func (c *console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	var argsFloat []float32
	for i := 1; i < len(args); i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return "", err
		}
		argsFloat = append(argsFloat, float32(f))
	}
	res, err := fn(c, argsFloat)
	if err != nil {
		return "", err
	}
	var resStr []string
	for _, vv := range res {
		var resLine []string
		for _, v := range vv {
			resLine = append(resLine, strconv.FormatFloat(float64(v), 'f', 3, 32))
		}
		resStr = append(resStr, strings.Join(resLine, " "))
	}
	return strings.Join(resStr, "\n"), nil
}
