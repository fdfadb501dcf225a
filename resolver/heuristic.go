package resolver

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/calliari/tunegrab/entity"
	"github.com/calliari/tunegrab/musicbrainz"
	"github.com/calliari/tunegrab/util"
)

const (
	defaultGenre  = "Classical"
	unknownArtist = "Unknown"
	// artist guesses shorter than this are noise
	minArtistLength = 2
)

// ErrUnparsable signals a file name no identity
// can be guessed from
var ErrUnparsable = errors.New("unparsable file name")

var delimiterExpression = regexp.MustCompile(`[:：\-]\s*`)

// Heuristic guesses a track identity out of a loosely
// structured file name, then corroborates the guess against
// a third-party catalog. A guess without corroboration still
// resolves, flagged as partial.
type Heuristic struct {
	Client *musicbrainz.Client
}

// ParseFilename splits a file name shaped like
// "Artist: Title" (or "Artist：Title") into its guesses,
// falling back to the whole name as title
func ParseFilename(name string) (artist, title string) {
	stem := strings.NewReplacer("_", " ", "-", " ").Replace(util.FileBaseStem(name))

	artist, title = unknownArtist, strings.TrimSpace(stem)
	if segments := delimiterExpression.Split(stem, 2); len(segments) == 2 {
		if guess := strings.TrimSpace(segments[0]); len(guess) >= minArtistLength {
			artist = guess
		}
		title = strings.TrimSpace(segments[1])
	}
	return artist, title
}

func (heuristic *Heuristic) Resolve(ctx context.Context, reference string) ([]*entity.Track, error) {
	artist, title := ParseFilename(filepath.Base(reference))
	if len(title) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnparsable, reference)
	}

	guess := &entity.Track{
		Title:   title,
		Artists: []string{artist},
		Genre:   defaultGenre,
		Partial: true,
	}

	// absence of corroboration is not an error for this strategy
	recording, err := heuristic.Client.SearchRecording(ctx, artist, title)
	if err != nil || recording == nil || !corroborates(title, recording.Title) {
		return []*entity.Track{guess}, nil
	}

	album, date := recording.Release()
	return []*entity.Track{{
		Title:       recording.Title,
		Artists:     []string{util.First(recording.Artist(), artist)},
		Album:       album,
		ReleaseDate: date,
		Genre:       defaultGenre,
	}}, nil
}

// corroborates accepts the catalog record only when its title
// extends the guess or stays within edit distance of it
func corroborates(guess, title string) bool {
	guess, title = strings.ToLower(guess), strings.ToLower(title)
	if strings.HasPrefix(title, guess) {
		return true
	}
	return levenshtein.ComputeDistance(guess, title) <= len(guess)/2
}
