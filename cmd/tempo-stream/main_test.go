package main

import (
	"log/slog"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/phanxgames/tempo"
	"github.com/phanxgames/tempo/stream"
)

type doneToken struct{}

func (doneToken) Wait() bool                     { return true }
func (doneToken) WaitTimeout(time.Duration) bool { return true }
func (doneToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (doneToken) Error() error { return nil }

type countingClient struct {
	topics map[string]int
}

func (c *countingClient) Publish(topic string, _ byte, _ bool, _ interface{}) mqtt.Token {
	c.topics[topic]++
	return doneToken{}
}

func TestBuildShow(t *testing.T) {
	client := &countingClient{topics: make(map[string]int)}
	root := buildShow(client, stream.MQTTConfig{Topic: "show"}, slog.New(slog.DiscardHandler))

	if !root.IsInfiniteLoop() || root.Duration() != 8 {
		t.Errorf("root: infinite = %v, duration = %v", root.IsInfiniteLoop(), root.Duration())
	}
	if root.NumChildren() != 1 || root.TotalObjectCount() != 2 {
		t.Fatalf("children = %d, objects = %d; want 1, 2", root.NumChildren(), root.TotalObjectCount())
	}

	root.Play()
	for i := 0; i < 10; i++ {
		root.Update(1)
	}
	if root.CurrentLoop() != 1 || root.CurrentTime() != 2 {
		t.Errorf("clock = (%v, %d), want (2, 1)", root.CurrentTime(), root.CurrentLoop())
	}
	if client.topics["show/lamp"] != 10 || client.topics["show/dimmer"] != 10 {
		t.Errorf("publishes = %v, want 10 per object", client.topics)
	}

	pulse := root.ChildAt(0)
	if pulse.State() != tempo.Playing {
		t.Errorf("pulse state = %v, want playing", pulse.State())
	}
}
