package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Registry collects the shop's operational counters. A single instance is
// shared by the services and exposed on the health endpoint.
type Registry struct {
	OrdersCreated   Counter
	OrdersCancelled Counter
	OrdersCompleted Counter
	OrdersReturned  Counter

	PointsRedeemed    Counter
	PointsEarned      Counter
	PointsTransferred Counter
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"orders_created":     r.OrdersCreated.Load(),
		"orders_cancelled":   r.OrdersCancelled.Load(),
		"orders_completed":   r.OrdersCompleted.Load(),
		"orders_returned":    r.OrdersReturned.Load(),
		"points_redeemed":    r.PointsRedeemed.Load(),
		"points_earned":      r.PointsEarned.Load(),
		"points_transferred": r.PointsTransferred.Load(),
	}
}
