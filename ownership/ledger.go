package ownership

import (
	"sync"
)

// Ledger records the live set of owned values. Entries are addressed by
// handle; released slots are recycled through a free list.
type Ledger struct {
	entries   []entry
	freeList  []Handle
	observers []Observer
	mu        sync.Mutex
}

type entry struct {
	kind Kind
	live bool
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Create records a freshly constructed owned value and returns its handle.
func (l *Ledger) Create(kind Kind) Handle {
	l.mu.Lock()
	h := l.insert(kind)
	l.mu.Unlock()

	l.notify(Event{Type: EventCreated, Handle: h, Kind: kind})
	return h
}

// Release marks a handle dead. It returns false, and notifies observers with
// EventDoubleRelease, if the handle is unknown or was already released.
func (l *Ledger) Release(h Handle) bool {
	if h == 0 {
		return false
	}

	l.mu.Lock()
	idx := int(h - 1)
	if idx >= len(l.entries) || !l.entries[idx].live {
		kind := Kind(0)
		if idx < len(l.entries) {
			kind = l.entries[idx].kind
		}
		l.mu.Unlock()
		l.notify(Event{Type: EventDoubleRelease, Handle: h, Kind: kind})
		return false
	}

	kind := l.entries[idx].kind
	l.entries[idx].live = false
	l.freeList = append(l.freeList, h)
	l.mu.Unlock()

	l.notify(Event{Type: EventReleased, Handle: h, Kind: kind})
	return true
}

// Duplicate records a deep copy of src and returns the copy's handle.
// The source stays live; the copy is an independent entry.
func (l *Ledger) Duplicate(src Handle, kind Kind) Handle {
	l.mu.Lock()
	h := l.insert(kind)
	l.mu.Unlock()

	l.notify(Event{Type: EventDuplicated, Handle: h, Source: src, Kind: kind})
	return h
}

// Live returns the number of live entries.
func (l *Ledger) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for _, e := range l.entries {
		if e.live {
			count++
		}
	}
	return count
}

// LiveOf returns the number of live entries of one kind.
func (l *Ledger) LiveOf(kind Kind) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for _, e := range l.entries {
		if e.live && e.kind == kind {
			count++
		}
	}
	return count
}

// Each iterates over live entries.
func (l *Ledger) Each(fn func(Handle, Kind) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.entries {
		if e.live {
			if !fn(Handle(i+1), e.kind) {
				break
			}
		}
	}
}

// Reset discards all entries and the free list. Observers are kept.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
	l.freeList = l.freeList[:0]
}

// Subscribe adds an observer for lifecycle events.
func (l *Ledger) Subscribe(o Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, o)
}

// Unsubscribe removes an observer.
func (l *Ledger) Unsubscribe(o Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, obs := range l.observers {
		if obs == o {
			l.observers = append(l.observers[:i], l.observers[i+1:]...)
			return
		}
	}
}

// insert assumes l.mu is held.
func (l *Ledger) insert(kind Kind) Handle {
	e := entry{kind: kind, live: true}

	if len(l.freeList) > 0 {
		h := l.freeList[len(l.freeList)-1]
		l.freeList = l.freeList[:len(l.freeList)-1]
		l.entries[h-1] = e
		return h
	}

	l.entries = append(l.entries, e)
	return Handle(len(l.entries))
}

func (l *Ledger) notify(e Event) {
	l.mu.Lock()
	obs := make([]Observer, len(l.observers))
	copy(obs, l.observers)
	l.mu.Unlock()

	for _, o := range obs {
		o.OnOwnershipEvent(e)
	}
}

// Process-wide tracking hook. Nil by default so the value types pay only a
// nil check when tracking is off.
var tracked *Ledger

// Track installs a ledger as the process-wide lifecycle recorder.
func Track(l *Ledger) {
	tracked = l
}

// Untrack removes the installed ledger.
func Untrack() {
	tracked = nil
}

// Tracked returns the installed ledger, or nil.
func Tracked() *Ledger {
	return tracked
}

// OnCreate reports a construction to the tracked ledger, if any.
func OnCreate(kind Kind) Handle {
	if tracked == nil {
		return 0
	}
	return tracked.Create(kind)
}

// OnRelease reports a release to the tracked ledger, if any.
func OnRelease(h Handle) {
	if tracked != nil && h != 0 {
		tracked.Release(h)
	}
}

// OnDuplicate reports a deep copy to the tracked ledger, if any.
func OnDuplicate(src Handle, kind Kind) Handle {
	if tracked == nil {
		return 0
	}
	return tracked.Duplicate(src, kind)
}
