package spotify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReference(t *testing.T) {
	kind, id, err := ParseReference("https://open.spotify.com/track/6rqhFgbbKwnb9MLmUQDhG6")
	assert.Nil(t, err)
	assert.Equal(t, KindTrack, kind)
	assert.Equal(t, "6rqhFgbbKwnb9MLmUQDhG6", id)

	kind, id, err = ParseReference("open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M?si=abc")
	assert.Nil(t, err)
	assert.Equal(t, KindPlaylist, kind)
	assert.Equal(t, "37i9dQZF1DXcBWIGoYBM5M", id)
}

func TestParseReferenceMalformed(t *testing.T) {
	for _, reference := range []string{
		"",
		"https://example.com/track/123",
		"https://open.spotify.com/album/123",
		"not a url at all",
	} {
		_, _, err := ParseReference(reference)
		assert.ErrorIs(t, err, ErrMalformedReference)
	}
}

func TestAuthenticateWithoutCredentials(t *testing.T) {
	t.Setenv("SPOTIFY_ID", "")
	t.Setenv("SPOTIFY_KEY", "")
	client, err := Authenticate(context.Background())
	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrCredentials)
}
