package ocr

import (
	"context"
	"testing"
	"time"
)

func TestEnginePoolBoundsConcurrency(t *testing.T) {
	p := NewEnginePool(2)

	if err := p.Acquire(context.Background()); err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	if err := p.Acquire(context.Background()); err != nil {
		t.Fatalf("second acquire: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := p.Acquire(ctx); err == nil {
		t.Fatal("third acquire succeeded on a full pool")
	}

	p.Release()
	if err := p.Acquire(context.Background()); err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
}

func TestEnginePoolCanceledContext(t *testing.T) {
	p := NewEnginePool(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.Acquire(ctx); err == nil {
		t.Fatal("acquire succeeded with a canceled context")
	}
}

func TestEnginePoolDefaultSize(t *testing.T) {
	if got := NewEnginePool(0).Size(); got != 4 {
		t.Errorf("default pool size = %d, want 4", got)
	}
	if got := NewEnginePool(8).Size(); got != 8 {
		t.Errorf("pool size = %d, want 8", got)
	}
}
