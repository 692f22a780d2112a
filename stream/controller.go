package stream

import (
	"encoding/json"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/matt-g-everett/ledanim/anim"
)

// Command is a control message received over MQTT or HTTP.
type Command struct {
	Type  string `json:"type"`
	Scene int    `json:"scene,omitempty"`
}

// Report describes the current state of a Controller.
type Report struct {
	Status     anim.Status `json:"status"`
	ElapsedMs  int64       `json:"elapsedMs"`
	DurationMs int64       `json:"durationMs"`
	Scenes     int         `json:"scenes"`
}

// Controller that manages animations.
type Controller struct {
	scenes     []anim.Animation[*Frame]
	loop       bool
	transition time.Duration
	logger     *log.Logger
	timeline   *anim.SyncTimeline[*Frame]
	stopped    atomic.Bool

	// target is what the timeline plays once elapsed reaches settle.
	// Both are only touched inside timeline.Swap.
	target anim.Animation[*Frame]
	settle time.Duration
}

// NewController creates an instance of a Controller playing the whole show.
func NewController(scenes []anim.Animation[*Frame], loop bool, transition time.Duration,
	logger *log.Logger) *Controller {

	c := new(Controller)
	c.scenes = scenes
	c.loop = loop
	c.transition = transition
	c.logger = logger
	c.target = Show(scenes, loop)
	c.timeline = anim.NewSyncTimeline(c.newTimeline(c.target))

	return c
}

func (c *Controller) newTimeline(a anim.Animation[*Frame]) *anim.Timeline[*Frame] {
	return anim.NewTimeline(a, anim.WithLogger(c.logger))
}

// Update advances the show by delta. A stopped show stays put until the next
// begin or scene command.
func (c *Controller) Update(delta time.Duration) anim.Status {
	if c.stopped.Load() {
		return c.timeline.Status()
	}
	return c.timeline.Update(delta)
}

// CalculateFrame returns the current frame.
func (c *Controller) CalculateFrame() *Frame {
	return c.timeline.Value()
}

// Report returns the playback state.
func (c *Controller) Report() Report {
	_, status, elapsed := c.timeline.Snapshot()
	duration := c.timeline.Duration()
	r := Report{
		Status:     status,
		ElapsedMs:  elapsed.Milliseconds(),
		DurationMs: duration.Milliseconds(),
		Scenes:     len(c.scenes),
	}
	if duration == anim.Forever {
		r.DurationMs = -1
	}
	return r
}

// CrossFade blends from whatever is playing into next over the transition time.
func (c *Controller) CrossFade(next anim.Animation[*Frame]) {
	c.timeline.Swap(func(old *anim.Timeline[*Frame]) *anim.Timeline[*Frame] {
		tl := c.newTimeline(crossFade(c.source(old), next, c.transition))
		c.target, c.settle = next, c.transition
		tl.Begin()
		return tl
	})
	c.stopped.Store(false)
}

// source is the animation a cross-fade starts from. Once the old timeline has
// settled into its target the fade is rebased onto that target, so earlier
// shows are released.
func (c *Controller) source(old *anim.Timeline[*Frame]) anim.Animation[*Frame] {
	if c.target != nil && old.Elapsed() >= c.settle {
		return anim.Skip(c.target, old.Elapsed())
	}
	return anim.Skip(old.Animation(), old.Elapsed())
}

// ShowScene cross-fades into scene i and then carries on with the rest of the show.
func (c *Controller) ShowScene(i int) error {
	if i < 0 || i >= len(c.scenes) {
		return fmt.Errorf("scene %d out of range [0,%d)", i, len(c.scenes))
	}
	next := Show(c.scenes[i:], false)
	if c.loop {
		next = anim.Sequence(next, Show(c.scenes, true))
	}
	c.CrossFade(next)
	return nil
}

// Apply executes a control command.
func (c *Controller) Apply(cmd Command) error {
	switch cmd.Type {
	case "begin":
		c.timeline.Swap(func(*anim.Timeline[*Frame]) *anim.Timeline[*Frame] {
			c.target, c.settle = Show(c.scenes, c.loop), 0
			tl := c.newTimeline(c.target)
			tl.Begin()
			return tl
		})
		c.stopped.Store(false)
	case "pause":
		c.timeline.Pause()
	case "resume":
		c.timeline.Resume()
	case "stop":
		c.stopped.Store(true)
		c.timeline.Stop()
	case "scene":
		return c.ShowScene(cmd.Scene)
	default:
		return fmt.Errorf("unknown command %q", cmd.Type)
	}
	return nil
}

// HandleMessage decodes and applies a JSON command.
func (c *Controller) HandleMessage(payload []byte) error {
	var cmd Command
	if err := json.Unmarshal(payload, &cmd); err != nil {
		return fmt.Errorf("decode command: %w", err)
	}
	return c.Apply(cmd)
}
