package main

import (
	"bytes"
	"errors"
	"fmt"
	"syscall/js"
	"time"

	"github.com/seqsense/pcgol/mat"
	webgl "github.com/seqsense/webgl-go"
	"go.uber.org/zap"

	"github.com/seqsense/draglook"
	"github.com/seqsense/draglook/dom"
	"github.com/seqsense/draglook/hmd"
	"github.com/seqsense/draglook/internal/logging"
	"github.com/seqsense/draglook/scene"
)

const (
	configPath = "draglook.yaml"
	gridSize   = 50
	gridPitch  = 0.5
)

func main() {
	if err := run(); err != nil {
		js.Global().Get("console").Call("error", errorToJS(err))
		return
	}
	select {}
}

func run() error {
	cfg := defaultConfig()
	b, err := fetchGet(configPath)
	switch {
	case err == nil:
		if cfg, err = loadConfig(b); err != nil {
			return fmt.Errorf("%s: %w", configPath, err)
		}
	case !errors.Is(err, errNotFound):
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}

	doc := dom.NewBrowserDocument()
	el, ok := doc.GetElementByID(cfg.Canvas)
	if !ok {
		return fmt.Errorf("canvas %q: %w", cfg.Canvas, draglook.ErrHostUnavailable)
	}
	gl, err := webgl.New(el)
	if err != nil {
		return fmt.Errorf("%v: %w", err, draglook.ErrHostUnavailable)
	}
	showDebugInfo(gl)
	r, err := newRenderer(gl)
	if err != nil {
		return err
	}

	tracker, err := newTracker(cfg.Tracker, logger)
	if err != nil {
		return err
	}

	reg := scene.NewRegistry()
	if err := draglook.Register(reg, tracker, draglook.WithLogger(logger)); err != nil {
		return err
	}
	s := scene.New(reg, doc, scene.WithLogger(logger))
	cam := s.NewEntity("camera")
	cam.SetPosition(mat.Vec3(cfg.Camera))
	if err := s.Attach(cam, draglook.ComponentName, cfg.Component); err != nil {
		return err
	}
	s.Play()

	points, err := loadScenery(cfg.PointCloud)
	if err != nil {
		return err
	}
	r.setPoints(points)
	logger.Info("Scenery loaded", zap.Int("points", len(points)/3))

	s.SetCanvas(dom.Canvas(el))

	behavior, _ := s.Component(cam, draglook.ComponentName)
	con := &console{controls: behavior.(*draglook.Controls), camera: cam}
	js.Global().Set("dragLookConsole",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if len(args) != 1 {
				return errorToJS(errArgumentNumber)
			}
			res, err := con.Run(args[0].String())
			if err != nil {
				return errorToJS(err)
			}
			return res
		}),
	)

	var frame js.Func
	var last float64
	frame = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		now := args[0].Float()
		if last != 0 {
			s.Tick(time.Duration((now - last) * float64(time.Millisecond)))
		}
		last = now
		r.draw(cam.ViewMatrix())
		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", frame)
	return nil
}

func loadScenery(path string) ([]float32, error) {
	if path == "" {
		return gridPoints(gridSize, gridPitch), nil
	}
	b, err := fetchGet(path)
	if err != nil {
		return nil, err
	}
	return readPoints(bytes.NewReader(b))
}

func newTracker(c trackerConfig, logger *zap.Logger) (draglook.Tracker, error) {
	switch c.Type {
	case trackerWebVR:
		v, err := hmd.NewWebVR()
		if errors.Is(err, hmd.ErrNoVRDisplay) {
			logger.Warn("No VR display, using a still pose")
			return hmd.NewStatic(hmd.IdentityPose()), nil
		}
		if err != nil {
			return nil, err
		}
		return v, nil
	case trackerStream:
		st, closeStream := hmd.DialStream(c.URL, func(err error) {
			logger.Warn("Invalid pose frame", zap.Error(err))
		})
		dom.OnceEvent(js.Global(), "pagehide", closeStream)
		return st, nil
	case trackerReplay:
		b, err := fetchGet(c.URL)
		if err != nil {
			return nil, err
		}
		tr, err := hmd.LoadTrace(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.URL, err)
		}
		return hmd.NewReplay(tr.Poses(), tr.Loop), nil
	default:
		return hmd.NewStatic(hmd.IdentityPose()), nil
	}
}
