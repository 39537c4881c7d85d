package logs

import "time"

// Entry is a single buffered log line
type Entry struct {
	Timestamp time.Time
	Source    string
	Stream    string
	Message   string

	highlighted string
	rows        []string
	rowsWidth   int
	rowsWrapped bool
}

// ring is a fixed-size buffer of entries; the oldest entry is evicted when full
type ring struct {
	entries []Entry
	head    int
	count   int
}

func newRing(size int) *ring {
	if size < 1 {
		size = 1
	}

	return &ring{entries: make([]Entry, size)}
}

// push appends an entry and reports whether the oldest one was evicted
func (r *ring) push(e Entry) bool {
	size := len(r.entries)
	tail := (r.head + r.count) % size

	r.entries[tail] = e

	if r.count < size {
		r.count++
		return false
	}

	r.head = (r.head + 1) % size

	return true
}

// at returns the entry at logical index i (0 is the oldest)
func (r *ring) at(i int) *Entry {
	return &r.entries[(r.head+i)%len(r.entries)]
}

func (r *ring) len() int {
	return r.count
}

func (r *ring) capacity() int {
	return len(r.entries)
}

func (r *ring) reset() {
	for i := range r.entries {
		r.entries[i] = Entry{}
	}

	r.head = 0
	r.count = 0
}
