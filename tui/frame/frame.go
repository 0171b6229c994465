// Package frame schedules work aligned to display frames. A Scheduler hands
// out one callback per request; the host decides when frames happen.
package frame

import "time"

// Handle identifies a requested frame so it can be cancelled.
type Handle uint64

// Callback runs when a requested frame fires.
type Callback func(at time.Time)

// Scheduler requests and cancels frame callbacks.
type Scheduler interface {
	RequestFrame(cb Callback) Handle
	CancelFrame(h Handle)
}
