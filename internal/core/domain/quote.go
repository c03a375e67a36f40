package domain

import "time"

// Quote is the aggregate for one quoting session: the in-progress cart plus
// the customer contact snapshot. A quote lives only in memory and expires
// with its session; nothing persists across sessions.
type Quote struct {
	ID        string
	Client    ClientInfo
	Cart      Cart
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry at now.
func (q *Quote) Expired(now time.Time) bool {
	return now.After(q.ExpiresAt)
}

// Clone returns a deep copy safe to hand across the store boundary.
func (q *Quote) Clone() *Quote {
	clone := *q
	clone.Cart = q.Cart.Clone()
	return &clone
}
