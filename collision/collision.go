package collision

import (
	"fmt"
	"strings"
	"sync"
)

// Decision is a user choice over a target path that
// already exists
type Decision int

const (
	Unset Decision = iota
	ReplaceOnce
	ReplaceAll
	SkipOnce
	SkipAll
)

// Resolver owns the session-scoped sticky decision: once the
// user opts for an "all" choice, every later collision of the
// same run resolves without prompting. It must not outlive
// the run it was created for.
type Resolver struct {
	mu     sync.Mutex
	sticky Decision
	reads  func(prompt string) string
}

func New(reads func(prompt string) string) *Resolver {
	return &Resolver{reads: reads}
}

// Resolve reports whether the existing file at path should be
// replaced, prompting the user unless a sticky decision holds.
// Unrecognized answers re-prompt rather than defaulting.
func (resolver *Resolver) Resolve(path string) bool {
	resolver.mu.Lock()
	defer resolver.mu.Unlock()

	switch resolver.sticky {
	case ReplaceAll:
		return true
	case SkipAll:
		return false
	}

	for {
		answer := strings.ToUpper(strings.TrimSpace(resolver.reads(
			fmt.Sprintf("%s already exists: replace[R] | replace all[RA] | skip[S] | skip all[SA]:", path))))
		switch answer {
		case "R":
			return true
		case "RA":
			resolver.sticky = ReplaceAll
			return true
		case "S":
			return false
		case "SA":
			resolver.sticky = SkipAll
			return false
		}
	}
}

// Sticky exposes the current session decision
func (resolver *Resolver) Sticky() Decision {
	resolver.mu.Lock()
	defer resolver.mu.Unlock()
	return resolver.sticky
}
