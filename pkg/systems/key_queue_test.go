package systems

import (
	"sync"
	"testing"
)

func TestKeyQueueDrainPreservesOrder(t *testing.T) {
	q := NewKeyQueue(8)
	q.Push(KeyEvent{Key: "w", Down: true})
	q.Push(KeyEvent{Key: "a", Down: true})
	q.Push(KeyEvent{Key: "w", Down: false})

	var got []KeyEvent
	n := q.Drain(func(ev KeyEvent) { got = append(got, ev) })

	if n != 3 {
		t.Fatalf("Expected 3 drained events, got %d", n)
	}
	want := []KeyEvent{{"w", true}, {"a", true}, {"w", false}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", q.Len())
	}
}

func TestKeyQueueDropsWhenFull(t *testing.T) {
	q := NewKeyQueue(2)

	if !q.Push(KeyEvent{Key: "w", Down: true}) || !q.Push(KeyEvent{Key: "a", Down: true}) {
		t.Fatal("Push should succeed while queue has room")
	}
	if q.Push(KeyEvent{Key: "s", Down: true}) {
		t.Error("Push should fail when queue is full")
	}
}

// TestKeyQueueDrainSnapshot 处理期间新入队的事件留到下一次 Drain
func TestKeyQueueDrainSnapshot(t *testing.T) {
	q := NewKeyQueue(8)
	q.Push(KeyEvent{Key: "w", Down: true})

	n := q.Drain(func(ev KeyEvent) {
		q.Push(KeyEvent{Key: "x", Down: true})
	})

	if n != 1 {
		t.Errorf("Expected 1 event in first drain, got %d", n)
	}
	if q.Len() != 1 {
		t.Errorf("Expected event pushed during drain to remain queued, got %d", q.Len())
	}
}

func TestKeyQueueConcurrentProducer(t *testing.T) {
	q := NewKeyQueue(1000)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			q.Push(KeyEvent{Key: "d", Down: i%2 == 0})
		}
	}()

	total := 0
	for total < 500 {
		total += q.Drain(func(KeyEvent) {})
	}
	wg.Wait()

	if total != 500 {
		t.Errorf("Expected 500 events, got %d", total)
	}
}
