package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scripted(answers ...string) (func(string) string, *int) {
	prompts := 0
	return func(string) string {
		answer := answers[prompts]
		prompts++
		return answer
	}, &prompts
}

func TestResolveOnce(t *testing.T) {
	reads, prompts := scripted("r", "S")
	resolver := New(reads)

	assert.True(t, resolver.Resolve("track.mp3"))
	assert.Equal(t, Unset, resolver.Sticky())
	assert.False(t, resolver.Resolve("track.mp3"))
	assert.Equal(t, Unset, resolver.Sticky())
	assert.Equal(t, 2, *prompts)
}

func TestResolveReplaceAll(t *testing.T) {
	reads, prompts := scripted("RA")
	resolver := New(reads)

	assert.True(t, resolver.Resolve("one.mp3"))
	assert.Equal(t, ReplaceAll, resolver.Sticky())
	// no further prompting for the rest of the run
	assert.True(t, resolver.Resolve("two.mp3"))
	assert.True(t, resolver.Resolve("three.mp3"))
	assert.Equal(t, 1, *prompts)
}

func TestResolveSkipAll(t *testing.T) {
	reads, prompts := scripted("sa")
	resolver := New(reads)

	assert.False(t, resolver.Resolve("one.mp3"))
	assert.Equal(t, SkipAll, resolver.Sticky())
	assert.False(t, resolver.Resolve("two.mp3"))
	assert.Equal(t, 1, *prompts)
}

func TestResolveReprompts(t *testing.T) {
	reads, prompts := scripted("", "whatever", "R")
	resolver := New(reads)

	assert.True(t, resolver.Resolve("track.mp3"))
	assert.Equal(t, 3, *prompts)
}
