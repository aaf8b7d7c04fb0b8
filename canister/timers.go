package canister

import (
	"sync"
	"time"
)

// TimerId identifies a registered periodic timer.
type TimerId uint64

// TimerScheduler is the host timer facility. Clearing an unknown or
// already-cleared id is a no-op, never an error.
type TimerScheduler interface {
	SetTimerInterval(interval time.Duration, fn func()) TimerId
	ClearTimer(id TimerId)
}

// Timers is a TimerScheduler backed by the runtime clock.
type Timers struct {
	mu     sync.Mutex
	nextId TimerId
	active map[TimerId]chan struct{}
}

func NewTimers() *Timers {
	return &Timers{active: make(map[TimerId]chan struct{})}
}

func (t *Timers) SetTimerInterval(interval time.Duration, fn func()) TimerId {
	t.mu.Lock()
	t.nextId++
	id := t.nextId
	stop := make(chan struct{})
	t.active[id] = stop
	t.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	return id
}

func (t *Timers) ClearTimer(id TimerId) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if stop, ok := t.active[id]; ok {
		delete(t.active, id)
		close(stop)
	}
}
