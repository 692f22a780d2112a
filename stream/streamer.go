package stream

import (
	"context"
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// A FrameSink delivers an encoded frame to the device.
type FrameSink func(payload []byte) error

// MqttSink publishes frames to topic.
func MqttSink(client mqtt.Client, topic string, qos byte) FrameSink {
	return func(payload []byte) error {
		token := client.Publish(topic, qos, false, payload)
		token.Wait()
		return token.Error()
	}
}

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	controller *Controller
	sink       FrameSink
	interval   time.Duration
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, controller *Controller, sink FrameSink) *Streamer {
	s := new(Streamer)
	s.controller = controller
	s.sink = sink
	s.interval = config.FrameInterval()
	return s
}

// SendFrame advances the show by delta and sends the resulting frame.
func (s *Streamer) SendFrame(delta time.Duration) error {
	s.controller.Update(delta)
	f := s.controller.CalculateFrame()
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	return s.sink(b)
}

// Subscribe listens for control commands on topic.
func (s *Streamer) Subscribe(client mqtt.Client, topic string) error {
	token := client.Subscribe(topic, 0, func(client mqtt.Client, msg mqtt.Message) {
		log.Printf("Received msg %d on %s: %s\n", msg.MessageID(), msg.Topic(), msg.Payload())
		if err := s.controller.HandleMessage(msg.Payload()); err != nil {
			log.Println(err)
		}
	})
	token.Wait()
	return token.Error()
}

// Run causes the Streamer to send Frames continuously until ctx is done.
func (s *Streamer) Run(ctx context.Context) error {
	publishTimer := time.NewTicker(s.interval)
	defer publishTimer.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-publishTimer.C:
			delta := now.Sub(last)
			last = now
			if err := s.SendFrame(delta); err != nil {
				log.Println(err)
			}
		}
	}
}
