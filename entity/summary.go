package entity

import "time"

// Summary aggregates the outcome of a whole run
type Summary struct {
	Total     int
	Succeeded int

	start time.Time
	end   time.Time
}

func NewSummary(total int) *Summary {
	return &Summary{Total: total, start: time.Now()}
}

// Succeed accounts one more successfully installed item
func (summary *Summary) Succeed() {
	summary.Succeeded++
}

// Close freezes the summary elapsed time
func (summary *Summary) Close() *Summary {
	if summary.end.IsZero() {
		summary.end = time.Now()
	}
	return summary
}

// Elapsed returns the run wall time
func (summary *Summary) Elapsed() time.Duration {
	if summary.end.IsZero() {
		return time.Since(summary.start).Round(time.Second)
	}
	return summary.end.Sub(summary.start).Round(time.Second)
}
