package ingest

import "context"

// Task is a running ingest. It completes exactly once.
type Task struct {
	done  chan struct{}
	image InlineImage
	err   error
}

// Start runs Ingest in a new goroutine. The caller must not assume the task
// has completed when Start returns.
func (in *Ingester) Start(ctx context.Context, up Upload) *Task {
	t := &Task{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.image, t.err = in.Ingest(ctx, up)
	}()
	return t
}

// Done is closed when the task completes.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task completes or ctx is done.
func (t *Task) Wait(ctx context.Context) (InlineImage, error) {
	select {
	case <-t.done:
		return t.image, t.err
	case <-ctx.Done():
		return InlineImage{}, ctx.Err()
	}
}
