package portfolio

import "sync"

// Disposer releases whatever a Mount call acquired. Calling it more than once is safe.
type Disposer func()

// Lifecycle collects disposers registered while mounting and releases them,
// last registered first, exactly once.
type Lifecycle struct {
	mu       sync.Mutex
	disposed bool
	fns      []Disposer
}

// Add registers d. If the lifecycle is already disposed, d runs immediately.
func (l *Lifecycle) Add(d Disposer) {
	if d == nil {
		return
	}
	l.mu.Lock()
	if l.disposed {
		l.mu.Unlock()
		d()
		return
	}
	l.fns = append(l.fns, d)
	l.mu.Unlock()
}

// Dispose runs every registered disposer in reverse order.
func (l *Lifecycle) Dispose() {
	l.mu.Lock()
	if l.disposed {
		l.mu.Unlock()
		return
	}
	l.disposed = true
	fns := l.fns
	l.fns = nil
	l.mu.Unlock()

	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

// Disposed reports whether Dispose has run.
func (l *Lifecycle) Disposed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.disposed
}
