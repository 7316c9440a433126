package main

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	trackerStatic = "static"
	trackerWebVR  = "webvr"
	trackerStream = "stream"
	trackerReplay = "replay"
)

var (
	errUnknownTracker = errors.New("unknown tracker type")
	errTrackerURL     = errors.New("tracker requires url")
)

// config is the page configuration read from draglook.yaml.
type config struct {
	Canvas     string        `yaml:"canvas"`
	PointCloud string        `yaml:"pointcloud"`
	Tracker    trackerConfig `yaml:"tracker"`
	Component  string        `yaml:"component"`
	Camera     [3]float32    `yaml:"camera"`
	LogLevel   string        `yaml:"log_level"`
}

type trackerConfig struct {
	Type string `yaml:"type"`
	URL  string `yaml:"url"`
}

func defaultConfig() config {
	return config{
		Canvas:   "canvas",
		Tracker:  trackerConfig{Type: trackerStatic},
		Camera:   [3]float32{0, 1.6, 0},
		LogLevel: "info",
	}
}

func loadConfig(b []byte) (config, error) {
	c := defaultConfig()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, err
	}
	switch c.Tracker.Type {
	case trackerStatic, trackerWebVR:
	case trackerStream, trackerReplay:
		if c.Tracker.URL == "" {
			return c, fmt.Errorf("%s: %w", c.Tracker.Type, errTrackerURL)
		}
	default:
		return c, fmt.Errorf("%q: %w", c.Tracker.Type, errUnknownTracker)
	}
	return c, nil
}
