package provider

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/agiledragon/gomonkey/v2"
	"github.com/stretchr/testify/assert"
)

const resultsPage = `<html><body><script>
	var data = ["/watch?v=dQw4w9WgXcQ", "/watch?v=dQw4w9WgXcQ", "/watch?v=oHg5SJYRHA0"];
</script></body></html>`

func patchResponse(patches *gomonkey.Patches, do func() (*http.Response, error)) {
	patches.ApplyMethod(reflect.TypeOf(http.DefaultClient), "Do",
		func(*http.Client, *http.Request) (*http.Response, error) {
			return do()
		})
}

func TestSearch(t *testing.T) {
	// monkey patching
	patches := gomonkey.NewPatches()
	defer patches.Reset()
	patchResponse(patches, func() (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString(resultsPage)),
		}, nil
	})

	// testing
	matches, err := Search(context.Background(), "Artist Title audio")
	assert.Nil(t, err)
	assert.Len(t, matches, 2)
	assert.Equal(t, "dQw4w9WgXcQ", matches[0].ID)
	assert.Equal(t, 0, matches[0].Rank)
	assert.Equal(t, watchURL+"dQw4w9WgXcQ", matches[0].URL())
	assert.Equal(t, 1, matches[1].Rank)
}

func TestSearchNoMatch(t *testing.T) {
	// monkey patching
	patches := gomonkey.NewPatches()
	defer patches.Reset()
	patchResponse(patches, func() (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString("<html></html>")),
		}, nil
	})

	// testing
	matches, err := Search(context.Background(), "Artist Title audio")
	assert.Nil(t, matches)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestSearchEmptyQuery(t *testing.T) {
	matches, err := Search(context.Background(), "")
	assert.Nil(t, matches)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestSearchRetryExhaustion(t *testing.T) {
	// monkey patching
	patches := gomonkey.NewPatches()
	defer patches.Reset()
	patches.ApplyFunc(time.Sleep, func(time.Duration) {})
	attempts := 0
	patchResponse(patches, func() (*http.Response, error) {
		attempts++
		return nil, errors.New("connection refused")
	})

	// testing
	matches, err := Search(context.Background(), "Artist Title audio")
	assert.Nil(t, matches)
	assert.ErrorIs(t, err, ErrUnreachable)
	assert.Equal(t, retryAttempts, attempts)
}

func TestSearchRecovery(t *testing.T) {
	// monkey patching
	patches := gomonkey.NewPatches()
	defer patches.Reset()
	patches.ApplyFunc(time.Sleep, func(time.Duration) {})
	attempts := 0
	patchResponse(patches, func() (*http.Response, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("connection refused")
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString(resultsPage)),
		}, nil
	})

	// testing
	matches, err := Search(context.Background(), "Artist Title audio")
	assert.Nil(t, err)
	assert.NotEmpty(t, matches)
	assert.Equal(t, 3, attempts)
}
