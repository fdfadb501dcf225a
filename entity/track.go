package entity

import (
	"fmt"
	"strings"

	"github.com/calliari/tunegrab/util"
	"github.com/gosimple/slug"
)

type Artwork struct {
	URL  string
	Data []byte
}

// Track is the resolved identity of a single song,
// immutable once produced by a resolver
type Track struct {
	ID          string
	Title       string
	Artists     []string // first one is the primary artist
	Album       string
	ReleaseDate string // source-provided granularity, kept verbatim
	Number      int    // track number within the album
	ISRC        string
	Genre       string
	Artwork     Artwork
	UpstreamURL string // URL of the upstream asset the song gets downloaded from
	Partial     bool   // heuristic guess lacking a corroborating catalog record
}

type TrackPath struct {
	track *Track
}

const (
	TrackFormat   = "mp3"
	ArtworkFormat = "jpg"
)

// Artist returns the primary artist, if any
func (track *Track) Artist() string {
	if len(track.Artists) == 0 {
		return ""
	}
	return track.Artists[0]
}

// Featuring returns every artist beyond the primary one,
// preserving upstream order
func (track *Track) Featuring() []string {
	if len(track.Artists) < 2 {
		return nil
	}
	return track.Artists[1:]
}

// Query derives the search terms used against
// the download provider
func (track *Track) Query() string {
	query := strings.TrimSpace(strings.Join([]string{track.Artist(), track.Title}, " "))
	if len(query) == 0 {
		return ""
	}
	return query + " audio"
}

// certain track titles include the variant description,
// this function aims to strip out that part:
// > Title: Name - Acoustic
// > Song:  Name
func (track *Track) Song() (song string) {
	song = track.Title
	song = strings.Split(song+" - ", " - ")[0]
	song = strings.Split(song+" (", " (")[0]
	return
}

func (track *Track) Path() TrackPath {
	return TrackPath{track}
}

func (trackPath TrackPath) id() string {
	if len(trackPath.track.ID) > 0 {
		return trackPath.track.ID
	}
	return fmt.Sprintf("%s-%s", trackPath.track.Artist(), trackPath.track.Title)
}

// Final is the file name of the track once installed
// in the output directory
func (trackPath TrackPath) Final() string {
	var (
		artist = strings.ReplaceAll(trackPath.track.Artist(), ".", "")
		title  = trackPath.track.Title
	)
	if featuring := trackPath.track.Featuring(); len(featuring) > 0 {
		title = fmt.Sprintf("%s (ft %s)", title, strings.Join(featuring, ", "))
	}
	return util.LegalizeFilename(fmt.Sprintf("%s - %s.%s", artist, title, TrackFormat))
}

// Download is the scratch file name of the transcoded track
func (trackPath TrackPath) Download() string {
	return fmt.Sprintf("%s.%s", slug.Make(trackPath.id()), TrackFormat)
}

// Artwork is the scratch file name of the cover image
func (trackPath TrackPath) Artwork() string {
	return fmt.Sprintf("%s.%s", slug.Make(trackPath.id()), ArtworkFormat)
}
