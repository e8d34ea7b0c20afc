package store

import "time"

// IDSource hands out task ids derived from the wall clock in milliseconds.
// When the clock has not advanced (or went backwards) since the last id it
// falls back to last+1, so ids are strictly increasing.
type IDSource struct {
	now  func() time.Time
	last int64
}

// NewIDSource creates an IDSource reading time from now.
func NewIDSource(now func() time.Time) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now}
}

// Next returns a new id greater than every id seen so far.
func (s *IDSource) Next() int64 {
	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// Observe records an existing id so later ids never collide with it.
func (s *IDSource) Observe(id int64) {
	if id > s.last {
		s.last = id
	}
}
