package util

import "fmt"

// ErrWrap flattens a (value, error) pair to a value,
// falling back to the given default on error
func ErrWrap[T any](fallback T) func(T, error) T {
	return func(value T, err error) T {
		if err != nil {
			return fallback
		}
		return value
	}
}

// ErrSuppress swallows an error on purpose
func ErrSuppress(_ error) {}

// First returns the first non-empty string of the given ones
func First(values ...string) string {
	for _, value := range values {
		if len(value) > 0 {
			return value
		}
	}
	return ""
}

// Excerpt shortens a string to a log-friendly preview
func Excerpt(data string, limits ...int) string {
	limit := 80
	if len(limits) > 0 {
		limit = limits[0]
	}
	if len(data) <= limit {
		return data
	}
	return data[:limit] + "..."
}

// HumanizeBytes renders a byte size for humans
func HumanizeBytes(size int) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%dB", size)
	}
	div, exp := unit, 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%cB", float64(size)/float64(div), "KMGTPE"[exp])
}
