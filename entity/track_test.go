package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var track = &Track{
	ID:          "123",
	Title:       "Title",
	Artists:     []string{"Artist", "Feat. Artist"},
	Album:       "Album",
	ReleaseDate: "1981",
	Number:      3,
}

func TestQuery(t *testing.T) {
	assert.Equal(t, "Artist Title audio", track.Query())
	assert.Contains(t, track.Query(), track.Title)
	assert.Empty(t, (&Track{}).Query())
	assert.Equal(t, "Title audio", (&Track{Title: "Title"}).Query())
}

func TestSong(t *testing.T) {
	assert.Equal(t, "Title", (&Track{Title: "Title - Acoustic"}).Song())
	assert.Equal(t, "Title", (&Track{Title: "Title (Remastered)"}).Song())
}

func TestPathFinal(t *testing.T) {
	assert.Equal(t, "Artist - Title (ft Feat. Artist).mp3", track.Path().Final())
	assert.Equal(t, "ACDC - TNT.mp3", (&Track{Title: "T?N*T", Artists: []string{"AC/DC."}}).Path().Final())
}

func TestPathDownload(t *testing.T) {
	assert.Equal(t, "123.mp3", track.Path().Download())
	assert.Equal(t, "artist-title.mp3", (&Track{Title: "Title", Artists: []string{"Artist"}}).Path().Download())
}

func TestPathArtwork(t *testing.T) {
	assert.Equal(t, "123.jpg", track.Path().Artwork())
}
