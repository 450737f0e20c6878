package poller

import "context"

// Poller sweeps the intake table for rows waiting to be processed and hands
// them to the processor one at a time. It returns when a sweep finds no
// candidates or the context is cancelled.
type Poller interface {
	Run(ctx context.Context) error
}
