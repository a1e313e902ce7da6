package tempo

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	tl := NewTimeline("tl")
	if tl.Logger() == nil {
		t.Fatal("Logger() should never be nil")
	}
	if tl.Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestLoggerInheritedFromAncestor(t *testing.T) {
	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	root := NewTimeline("root")
	mid := NewTimeline("mid")
	leaf := NewTimeline("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)
	root.SetLogger(l)

	if leaf.Logger() != l {
		t.Error("leaf should inherit the root logger")
	}

	own := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	mid.SetLogger(own)
	if leaf.Logger() != own {
		t.Error("leaf should use the nearest ancestor's logger")
	}

	mid.SetLogger(nil)
	leaf.RemoveFromParent()
	if leaf.Logger() == l {
		t.Error("detached leaf should no longer see the root logger")
	}
}

func TestPlaybackLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	tl := NewTimeline("walk")
	tl.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	tl.SetDuration(1)

	tl.Play()
	tl.Update(2)

	out := buf.String()
	for _, want := range []string{"tempo: play", "timeline=walk", "tempo: complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
