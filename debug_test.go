package tempo

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func debugTree(t *testing.T) (*Timeline, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	root := NewTimeline("root")
	root.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	root.SetDebug(true)
	return root, &buf
}

func TestDebugWarnsOnDeepTree(t *testing.T) {
	root, buf := debugTree(t)
	cur := root
	for i := 0; i < debugMaxTreeDepth+1; i++ {
		next := NewTimeline("level")
		cur.AddChild(next)
		cur = next
	}
	if !strings.Contains(buf.String(), "tree depth exceeds threshold") {
		t.Errorf("expected depth warning, got %q", buf.String())
	}
}

func TestDebugWarnsOnWideNode(t *testing.T) {
	root, buf := debugTree(t)
	for i := 0; i < debugMaxChildCount; i++ {
		root.AddChild(NewTimeline("c"))
	}
	if buf.Len() != 0 {
		t.Fatalf("no warning expected at the threshold, got %q", buf.String())
	}
	root.AddChild(NewTimeline("c"))
	if !strings.Contains(buf.String(), "child count exceeds threshold") {
		t.Errorf("expected child count warning, got %q", buf.String())
	}
}

func TestDebugInheritedByDescendants(t *testing.T) {
	root, buf := debugTree(t)
	mid := NewTimeline("mid")
	root.AddChild(mid)
	for i := 0; i < debugMaxChildCount+1; i++ {
		mid.AddChild(NewTimeline("c"))
	}
	if !strings.Contains(buf.String(), "timeline=mid") {
		t.Errorf("descendant warning should name mid, got %q", buf.String())
	}
}

func TestDebugOffIsSilent(t *testing.T) {
	var buf bytes.Buffer
	root := NewTimeline("root")
	root.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	for i := 0; i < debugMaxChildCount+5; i++ {
		root.AddChild(NewTimeline("c"))
	}
	if buf.Len() != 0 {
		t.Errorf("debug off should not warn, got %q", buf.String())
	}
}
