package processor

import (
	"bytes"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/calliari/tunegrab/entity"
	"github.com/calliari/tunegrab/entity/id3"
	"github.com/stretchr/testify/assert"
)

func scratchTrack(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "track.mp3")
	assert.Nil(t, os.WriteFile(path, []byte("\xff\xfbaudio-frames"), 0o644))
	return path
}

func coverBytes(t *testing.T, width int) []byte {
	t.Helper()
	var buffer bytes.Buffer
	assert.Nil(t, jpeg.Encode(&buffer, image.NewRGBA(image.Rect(0, 0, width, width)), nil))
	return buffer.Bytes()
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Unknown", Normalize("[unknown]"))
	assert.Equal(t, "Artist", Normalize("Artist"))
}

func TestDo(t *testing.T) {
	var (
		path  = scratchTrack(t)
		track = &entity.Track{
			Title:       "Title",
			Artists:     []string{"[unknown]"},
			Album:       "Album",
			ReleaseDate: "1981-03",
			Number:      3,
			ISRC:        "USRC17607839",
			Genre:       "Classical",
			Artwork:     entity.Artwork{Data: coverBytes(t, 64)},
		}
	)
	assert.Nil(t, Do(track, path))

	file, err := id3.Open(path, id3v2.Options{Parse: true})
	assert.Nil(t, err)
	defer file.Close()
	assert.Equal(t, "Title", file.Title())
	assert.Equal(t, "Unknown", file.Artist())
	assert.Equal(t, "Unknown", file.AlbumArtist())
	assert.Equal(t, "Album", file.Album())
	assert.Equal(t, "1981-03", file.ReleaseDate())
	assert.Equal(t, "3", file.TrackNumber())
	assert.Equal(t, "USRC17607839", file.ISRC())
	assert.Equal(t, "Classical", file.Genre())
	assert.NotEmpty(t, file.AttachedPicture())
}

func TestDoKeepsNonEmptyFields(t *testing.T) {
	path := scratchTrack(t)
	assert.Nil(t, Do(&entity.Track{Title: "Title", Album: "Album"}, path))
	// a later partial identity must not blank what is already there
	assert.Nil(t, Do(&entity.Track{Title: "Title"}, path))

	file, err := id3.Open(path, id3v2.Options{Parse: true})
	assert.Nil(t, err)
	defer file.Close()
	assert.Equal(t, "Album", file.Album())
}

func TestDoIdempotent(t *testing.T) {
	var (
		path  = scratchTrack(t)
		track = &entity.Track{
			Title:   "Title",
			Artists: []string{"Artist"},
			Album:   "Album",
			Artwork: entity.Artwork{Data: coverBytes(t, 64)},
		}
	)
	assert.Nil(t, Do(track, path))
	assert.Nil(t, Do(track, path))

	file, err := id3.Open(path, id3v2.Options{Parse: true})
	assert.Nil(t, err)
	defer file.Close()
	assert.Equal(t, "Title", file.Title())
	assert.Equal(t, "Artist", file.Artist())
	assert.Equal(t, "Album", file.Album())
	// re-applying identical artwork must not pile up picture frames
	assert.Len(t, file.GetFrames(file.CommonID("Attached picture")), 1)
}

func TestArtwork(t *testing.T) {
	processed, err := Artwork{}.Do(coverBytes(t, 1000))
	assert.Nil(t, err)

	cover, format, err := image.Decode(bytes.NewReader(processed))
	assert.Nil(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, artworkMaxSize, cover.Bounds().Dx())
}

func TestArtworkGarbage(t *testing.T) {
	processed, err := Artwork{}.Do([]byte("not an image"))
	assert.Nil(t, processed)
	assert.Error(t, err)
}
