package kafkax

import (
	"context"
	"testing"
	"time"
)

func waitClosed(t *testing.T, p *Producer) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		p.WaitClosed()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("producer loop did not exit")
	}
}

func TestProducerCloseThenCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := NewProducer([]string{"localhost:0"}, "lifecycle.test", 8)
	p.Start(ctx)

	// the shutdown order every main uses: stop intake, then the loop context
	p.Close()
	cancel()
	waitClosed(t, p)
}

func TestProducerCancelThenClose(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	p := NewProducer([]string{"localhost:0"}, "lifecycle.test", 8)
	p.Start(ctx)

	cancel()
	waitClosed(t, p)
	p.Close() // must be a no-op after the loop already closed the inbox
}
