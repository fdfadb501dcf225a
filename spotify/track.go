package spotify

import (
	"context"

	"github.com/calliari/tunegrab/entity"
	libspotify "github.com/zmb3/spotify/v2"
)

// images below this edge size make for poor covers
const artworkMinSize = 300

// Track resolves a single catalog record into its identity
func (client *Client) Track(ctx context.Context, id string) (*entity.Track, error) {
	track, err := client.GetTrack(ctx, libspotify.ID(id))
	if err != nil {
		return nil, remap(err)
	}
	return trackEntity(track), nil
}

func trackEntity(track *libspotify.FullTrack) *entity.Track {
	artists := make([]string, 0, len(track.Artists))
	for _, artist := range track.Artists {
		artists = append(artists, artist.Name)
	}

	return &entity.Track{
		ID:          track.ID.String(),
		Title:       track.Name,
		Artists:     artists,
		Album:       track.Album.Name,
		ReleaseDate: track.Album.ReleaseDate,
		Number:      int(track.TrackNumber),
		ISRC:        track.ExternalIDs["isrc"],
		Artwork:     entity.Artwork{URL: artworkURL(track.Album.Images)},
	}
}

// artworkURL picks the first image at least artworkMinSize
// pixels wide, falling back to the first one available
func artworkURL(images []libspotify.Image) string {
	for _, image := range images {
		if int(image.Width) >= artworkMinSize {
			return image.URL
		}
	}
	if len(images) > 0 {
		return images[0].URL
	}
	return ""
}
