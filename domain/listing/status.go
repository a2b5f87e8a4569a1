package listing

import (
	"fmt"
	"time"
)

type Phase string

const (
	PhaseNotStarted Phase = "notStarted"
	PhaseActive     Phase = "active"
	PhaseEnded      Phase = "ended"
)

// endTimeSanityFloor is the year-2000 epoch. For non-auction listings the raw
// EndTime field is only trusted as an absolute timestamp above this floor;
// smaller values are treated as "no deadline". The authoritative encoding has
// not been confirmed against the ledger's event schema, so this stays a
// conservative heuristic.
const endTimeSanityFloor = int64(946684800)

// TimeStatus is the derived, ephemeral lifecycle view of a listing.
type TimeStatus struct {
	Phase Phase `json:"phase"`
	// ActualEnd is the resolved absolute end timestamp, 0 when unknown.
	ActualEnd int64 `json:"actualEnd,omitempty"`
	// Remaining is time until ActualEnd, 0 when unknown or passed.
	Remaining time.Duration `json:"-"`
}

// ResolveTimeStatus derives the lifecycle phase from the raw ledger time
// fields. A ledger-confirmed Cancelled/Finalized status always overrides the
// derived phase.
func ResolveTimeStatus(l *Listing, now time.Time) *TimeStatus {
	if l.Status == StatusCancelled || l.Status == StatusFinalized {
		return &TimeStatus{Phase: PhaseEnded}
	}

	nowUnix := now.Unix()
	var hasStarted bool
	var actualEnd int64

	if l.Type == TypeIndividualAuction {
		if l.StartTime == 0 {
			// auction begins on first bid
			hasStarted = l.BidCount > 0
			if hasStarted {
				if l.EndTime > nowUnix {
					// ledger already re-encoded EndTime as absolute
					actualEnd = l.EndTime
				} else if l.HighestBid != nil && l.HighestBid.Timestamp > 0 {
					// EndTime is still the duration until first bid
					actualEnd = l.HighestBid.Timestamp + l.EndTime
				}
				// otherwise the end is unknown; never resolve to Ended
			}
		} else {
			hasStarted = nowUnix >= l.StartTime
			actualEnd = l.EndTime
		}
	} else {
		// FixedPrice / OffersOnly / DynamicPrice: immediately active when
		// StartTime == 0
		hasStarted = l.StartTime == 0 || nowUnix >= l.StartTime
		if l.EndTime > endTimeSanityFloor {
			actualEnd = l.EndTime
		}
	}

	ts := &TimeStatus{ActualEnd: actualEnd}
	switch {
	case hasStarted && actualEnd > 0 && actualEnd <= nowUnix:
		ts.Phase = PhaseEnded
	case !hasStarted:
		ts.Phase = PhaseNotStarted
	default:
		ts.Phase = PhaseActive
	}
	if actualEnd > nowUnix && ts.Phase != PhaseEnded {
		ts.Remaining = time.Duration(actualEnd-nowUnix) * time.Second
	}
	return ts
}

// FormatRemaining renders a duration as a compact human string, e.g. "2d 3h 4m".
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	days := int64(d.Hours()) / 24
	hours := int64(d.Hours()) % 24
	minutes := int64(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	}
}
