package dispatch

import (
	"fmt"

	"seedqr/internal/artifact"
	"seedqr/internal/shamir"
)

// State is one of the share-collection session states:
// Empty -> Collecting -> Sufficient -> Reconstructing -> Done|Failed.
type State int

const (
	StateEmpty State = iota
	StateCollecting
	StateSufficient
	StateReconstructing
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateCollecting:
		return "Collecting"
	case StateSufficient:
		return "Sufficient"
	case StateReconstructing:
		return "Reconstructing"
	case StateDone:
		return "Done"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// ShareCollector runs the share-collection session state machine that
// backs ReconstructDispatch. Accepting a share that parameter-matches the
// current set advances Empty->Collecting or stays in Collecting; reaching
// threshold shares moves to Sufficient; a duplicate share_id or parameter
// mismatch is a soft rejection that leaves the state unchanged.
type ShareCollector struct {
	state     State
	max       int
	accepted  []artifact.ShamirShare
	seenIDs   map[int]struct{}
	threshold int
	rejected  []error
}

// NewShareCollector creates a collector bounded by max accepted shares.
// max <= 0 means unbounded.
func NewShareCollector(max int) *ShareCollector {
	return &ShareCollector{state: StateEmpty, max: max, seenIDs: map[int]struct{}{}}
}

// State reports the collector's current state.
func (c *ShareCollector) State() State { return c.state }

// Offer accepts or soft-rejects one candidate share. It returns true once
// the session has reached Sufficient (the caller may stop sourcing more
// shares) or once the max bound has been hit.
func (c *ShareCollector) Offer(s artifact.ShamirShare) bool {
	if c.state == StateFailed || c.state == StateDone {
		return true
	}

	if len(c.accepted) == 0 {
		c.accepted = append(c.accepted, s)
		c.seenIDs[s.ShareID] = struct{}{}
		c.threshold = s.Threshold
		c.state = StateCollecting
	} else {
		if _, dup := c.seenIDs[s.ShareID]; dup {
			c.rejected = append(c.rejected, fmt.Errorf("%w: %d", shamir.ErrDuplicateShareID, s.ShareID))
			return c.maxReached()
		}
		if s.Version != c.accepted[0].Version || s.Threshold != c.accepted[0].Threshold || s.TotalShares != c.accepted[0].TotalShares {
			c.rejected = append(c.rejected, shamir.ErrInconsistentShares)
			return c.maxReached()
		}
		c.accepted = append(c.accepted, s)
		c.seenIDs[s.ShareID] = struct{}{}
	}

	if len(c.accepted) >= c.threshold {
		c.state = StateSufficient
		return true
	}
	return c.maxReached()
}

func (c *ShareCollector) maxReached() bool {
	if c.max > 0 && len(c.accepted) >= c.max {
		return true
	}
	return false
}

// Reject records a source-level classification/validation error without
// changing state (a soft error, not a fatal one).
func (c *ShareCollector) Reject(err error) {
	c.rejected = append(c.rejected, err)
}

// RejectIOError records an I/O failure obtaining a source's bytes.
func (c *ShareCollector) RejectIOError(err error) {
	c.rejected = append(c.rejected, fmt.Errorf("dispatch: source error: %w", err))
}

// Cancel transitions the session to Failed.
func (c *ShareCollector) Cancel() {
	c.state = StateFailed
}

// Finish transitions Sufficient->Reconstructing->Done and returns the
// accepted shares, or fails if the session never reached Sufficient.
func (c *ShareCollector) Finish() ([]artifact.ShamirShare, error) {
	if c.state != StateSufficient {
		c.state = StateFailed
		if len(c.accepted) == 0 {
			return nil, shamir.ErrEmptyShareSet
		}
		return nil, fmt.Errorf("%w: collected %d, need %d", shamir.ErrInsufficientShares, len(c.accepted), c.threshold)
	}
	c.state = StateReconstructing
	c.state = StateDone
	return c.accepted, nil
}

// Rejections returns the soft errors recorded during collection, for
// callers that want to surface why particular sources were skipped.
func (c *ShareCollector) Rejections() []error {
	return c.rejected
}
