package provider

import (
	"errors"
)

var (
	// ErrNoMatch signals a reachable provider with zero
	// candidates for the query
	ErrNoMatch = errors.New("no match found")

	// ErrUnreachable signals retry exhaustion against
	// the provider transport
	ErrUnreachable = errors.New("provider unreachable")
)

// Match is a candidate asset located on the provider,
// ranked by appearance order. The pipeline only ever
// consumes rank 0.
type Match struct {
	ID   string
	Rank int
}

func (match *Match) URL() string {
	return watchURL + match.ID
}
