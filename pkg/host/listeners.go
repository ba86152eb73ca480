package host

import "sync"

// listeners is a small registration table shared by the concrete hosts.
// Callbacks for one event fire in registration order.
type listeners struct {
	mu     sync.Mutex
	nextID int
	subs   map[Event][]listener
}

type listener struct {
	id int
	fn func()
}

func (l *listeners) add(ev Event, fn func()) (cancel func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.subs == nil {
		l.subs = make(map[Event][]listener)
	}
	l.nextID++
	id := l.nextID
	l.subs[ev] = append(l.subs[ev], listener{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			cur := l.subs[ev]
			for i, sub := range cur {
				if sub.id == id {
					l.subs[ev] = append(cur[:i:i], cur[i+1:]...)
					break
				}
			}
		})
	}
}

func (l *listeners) fire(ev Event) {
	l.mu.Lock()
	cur := make([]listener, len(l.subs[ev]))
	copy(cur, l.subs[ev])
	l.mu.Unlock()

	// Fire outside the lock so a callback can re-subscribe or cancel.
	for _, sub := range cur {
		sub.fn()
	}
}
