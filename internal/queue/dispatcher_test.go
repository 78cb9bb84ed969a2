package queue

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

func TestDispatcherRunProcessesEveryPath(t *testing.T) {
	q := New(4)
	var mu sync.Mutex
	var seen []string

	d := NewDispatcher(q, 2, func(path string) {
		mu.Lock()
		seen = append(seen, path)
		mu.Unlock()
	}, zerolog.Nop())

	for _, p := range []string{"a", "b", "c"} {
		if err := q.Enqueue(p); err != nil {
			t.Fatalf("Enqueue(%s): %v", p, err)
		}
	}
	q.Close()

	done := make(chan struct{})
	go func() {
		d.Run()
		close(done)
	}()
	<-done

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 3 {
		t.Fatalf("expected 3 processed paths, got %d: %v", len(seen), seen)
	}
}

func TestDispatcherRecoversFromPanickingHandler(t *testing.T) {
	q := New(2)
	var mu sync.Mutex
	processed := 0

	d := NewDispatcher(q, 1, func(path string) {
		mu.Lock()
		processed++
		mu.Unlock()
		if path == "boom" {
			panic("simulated worker panic")
		}
	}, zerolog.Nop())

	if err := q.Enqueue("boom"); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if err := q.Enqueue("fine"); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	q.Close()

	done := make(chan struct{})
	go func() {
		d.Run()
		close(done)
	}()
	<-done

	mu.Lock()
	defer mu.Unlock()
	if processed != 2 {
		t.Fatalf("expected both jobs to run despite the panic, got %d", processed)
	}
}
