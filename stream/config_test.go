package stream

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
mqtt:
  url: tcp://broker:1883
  username: tree
  password: secret
  qos: 2
  topics:
    control: home/xmastree/control
frameRate: 60
pixels: 50
loop: true
transition: 2s
scenes:
  - name: warm
    kind: fade
    from: "#000005"
    to: "#808080"
    duration: 1500ms
    easing: inOutQuad
    times: 2
    autoReverse: true
  - name: rainbow
    kind: gradient
    duration: 10s
    forever: true
    gradient:
      - {hue: 0, pos: 0}
      - {hue: 360, pos: 1}
`

func TestReadConfig(t *testing.T) {
	c, err := ReadConfig(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "tcp://broker:1883", c.Mqtt.URL)
	assert.Equal(t, byte(2), c.Mqtt.Qos)
	assert.Equal(t, defaultTopic, c.Mqtt.Topics.Stream)
	assert.Equal(t, "home/xmastree/control", c.Mqtt.Topics.Control)
	assert.Equal(t, 60.0, c.FrameRate)
	assert.Equal(t, 50, c.Pixels)
	assert.True(t, c.Loop)
	assert.Equal(t, 2*time.Second, c.Transition)

	require.Len(t, c.Scenes, 2)
	assert.Equal(t, 1500*time.Millisecond, c.Scenes[0].Duration)
	assert.Equal(t, 2.0, c.Scenes[0].Times)
	assert.True(t, c.Scenes[0].AutoReverse)
	assert.Equal(t, GradientTable{{Hue: 0, Pos: 0}, {Hue: 360, Pos: 1}}, c.Scenes[1].Gradient)
}

func TestReadConfigDefaults(t *testing.T) {
	c, err := ReadConfig(strings.NewReader("mqtt:\n  url: tcp://localhost:1883\n"))
	require.NoError(t, err)
	assert.Equal(t, defaultFrameRate, c.FrameRate)
	assert.Equal(t, defaultPixels, c.Pixels)
	assert.Equal(t, time.Second/30, c.FrameInterval())
}

func TestReadConfigInvalid(t *testing.T) {
	_, err := ReadConfig(strings.NewReader("frameRate: [fast"))
	assert.Error(t, err)
}
