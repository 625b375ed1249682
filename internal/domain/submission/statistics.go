package submission

import "math"

// Counts holds the number of submissions in each status.
type Counts map[Status]int64

type Statistics struct {
	Total          int64   `json:"total"`
	Draft          int64   `json:"draft"`
	Submitted      int64   `json:"submitted"`
	Approved       int64   `json:"approved"`
	Rejected       int64   `json:"rejected"`
	PendingReview  int64   `json:"pending_review"`
	CompletionRate float64 `json:"completion_rate"`
}

// NewStatistics derives the aggregate view. Total is the sum of the status
// partitions, so the partitions always add up.
func NewStatistics(c Counts) Statistics {
	st := Statistics{
		Draft:     c[StatusDraft],
		Submitted: c[StatusSubmitted],
		Approved:  c[StatusApproved],
		Rejected:  c[StatusRejected],
	}
	st.Total = st.Draft + st.Submitted + st.Approved + st.Rejected
	st.PendingReview = st.Submitted
	if st.Total > 0 {
		rate := float64(st.Approved+st.Rejected) / float64(st.Total) * 100
		st.CompletionRate = math.Round(rate*100) / 100
	}
	return st
}
