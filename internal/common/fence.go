package common

import "sync/atomic"

// RequestFence discards responses from superseded fetches. Each fetch takes
// a ticket from Begin and only applies its result while IsCurrent holds.
type RequestFence struct {
	latest atomic.Uint64
}

type Ticket uint64

// Begin starts a new fetch, invalidating every earlier ticket.
func (f *RequestFence) Begin() Ticket {
	return Ticket(f.latest.Add(1))
}

func (f *RequestFence) IsCurrent(t Ticket) bool {
	return f.latest.Load() == uint64(t)
}

// Invalidate drops every outstanding ticket, for example on unmount.
func (f *RequestFence) Invalidate() {
	f.latest.Add(1)
}
