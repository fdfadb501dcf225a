package processor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/calliari/tunegrab/entity"
	"github.com/calliari/tunegrab/entity/id3"
)

// ErrTagWrite wraps any failure while embedding
// metadata into a file
var ErrTagWrite = errors.New("tag write failed")

// upstream catalogs use this literal for fields
// they could not attribute
const unknownSentinel = "[unknown]"

// Normalize turns the upstream "unknown" sentinel into
// a human-readable value
func Normalize(value string) string {
	if value == unknownSentinel {
		return "Unknown"
	}
	return value
}

// Do embeds the resolved identity into the audio file at
// path, initializing a tag container when the file carries
// none. Only non-empty fields are written, so re-applying
// the same identity yields the same on-disk values.
func Do(track *entity.Track, path string) error {
	file, err := id3.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrTagWrite, err)
	}
	defer file.Close()

	set(file.SetTitle, track.Title)
	set(file.SetArtist, strings.Join(track.Artists, "/"))
	set(file.SetAlbumArtist, track.Artist())
	set(file.SetAlbum, track.Album)
	set(file.SetReleaseDate, track.ReleaseDate)
	set(file.SetGenre, track.Genre)
	set(file.SetISRC, track.ISRC)
	if track.Number > 0 {
		file.SetTrackNumber(strconv.Itoa(track.Number))
	}
	if len(track.Artwork.Data) > 0 {
		file.SetAttachedPicture(track.Artwork.Data, "image/jpeg")
	}

	if err := file.Save(); err != nil {
		return fmt.Errorf("%w: %s", ErrTagWrite, err)
	}
	return nil
}

// set writes a field only when the value carries something,
// never clearing an existing one with emptiness
func set(setter func(string), value string) {
	if len(value) > 0 {
		setter(Normalize(value))
	}
}
