package ocr

import "context"

// EnginePool bounds concurrent OCR engine use across the whole process.
// Each page acquires a handle for the duration of one recognition and
// releases it on every exit path; no handle is ever shared between two
// in-flight pages, and none outlives a single recognition call.
type EnginePool struct {
	slots chan struct{}
}

func NewEnginePool(size int) *EnginePool {
	if size <= 0 {
		size = 4
	}
	return &EnginePool{slots: make(chan struct{}, size)}
}

// Acquire blocks until an engine handle is free or ctx is done.
func (p *EnginePool) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case p.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *EnginePool) Release() {
	<-p.slots
}

// Size returns the pool capacity.
func (p *EnginePool) Size() int {
	return cap(p.slots)
}
