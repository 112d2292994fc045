package memory

import (
	"context"
	"testing"
)

func TestLoadMissingKey(t *testing.T) {
	g := NewMemoryGateway()
	v, ok, err := g.Load(context.Background(), "catalog")
	if err != nil || ok || v != nil {
		t.Fatalf("got (%q, %v, %v), want absence", v, ok, err)
	}
}

func TestSaveIsolatesCallerBuffer(t *testing.T) {
	ctx := context.Background()
	g := NewMemoryGateway()

	buf := []byte(`[1]`)
	if err := g.Save(ctx, "entries", buf); err != nil {
		t.Fatalf("save: %v", err)
	}
	buf[1] = '2'

	v, ok, err := g.Load(ctx, "entries")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if string(v) != `[1]` {
		t.Errorf("got %s, want [1]", v)
	}
	if g.Saves("entries") != 1 {
		t.Errorf("saves: got %d, want 1", g.Saves("entries"))
	}
}
