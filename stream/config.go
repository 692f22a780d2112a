package stream

import (
	"io"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	defaultFrameRate = 30.0
	defaultPixels    = 500
	defaultTopic     = "home/xmastree/stream"
)

// Config is the YAML configuration of the streamer.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Qos      byte   `yaml:"qos"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	FrameRate  float64       `yaml:"frameRate"`
	Pixels     int           `yaml:"pixels"`
	Loop       bool          `yaml:"loop"`
	Transition time.Duration `yaml:"transition"`
	Scenes     []SceneConfig `yaml:"scenes"`
}

// SceneConfig describes one scene of the show.
type SceneConfig struct {
	Name        string        `yaml:"name"`
	Kind        string        `yaml:"kind"`
	From        string        `yaml:"from"`
	To          string        `yaml:"to"`
	Colours     []string      `yaml:"colours"`
	Gradient    GradientTable `yaml:"gradient"`
	TrailLength int           `yaml:"trailLength"`
	Duration    time.Duration `yaml:"duration"`
	Easing      string        `yaml:"easing"`
	Lut         int           `yaml:"lut"`
	Delay       time.Duration `yaml:"delay"`
	Times       float64       `yaml:"times"`
	Forever     bool          `yaml:"forever"`
	AutoReverse bool          `yaml:"autoReverse"`
}

// ReadConfig decodes a YAML config and fills in defaults.
func ReadConfig(r io.Reader) (Config, error) {
	var c Config
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return c, err
	}
	if c.FrameRate <= 0 {
		c.FrameRate = defaultFrameRate
	}
	if c.Pixels <= 0 {
		c.Pixels = defaultPixels
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = defaultTopic
	}
	return c, nil
}

// FrameInterval is the time between two published frames.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.FrameRate)
}
