package spotify

import (
	"context"
	"fmt"

	"github.com/calliari/tunegrab/entity"
	libspotify "github.com/zmb3/spotify/v2"
)

const pageSize = 100

// Playlist eagerly resolves every member of a collection,
// walking its pages until the catalog reports no further one.
// Each resolved member is handed to the optional progress
// callbacks as well.
func (client *Client) Playlist(ctx context.Context, id string, progress ...func(*entity.Track)) ([]*entity.Track, error) {
	playlist, err := client.GetPlaylist(ctx, libspotify.ID(id))
	if err != nil {
		return nil, remap(err)
	}
	if !playlist.IsPublic {
		return nil, fmt.Errorf("%w: playlist %s is private", ErrNotAccessible, id)
	}

	var (
		tracks     []*entity.Track
		offset     int
		emptyPages int
	)
	for {
		page, err := client.GetPlaylistItems(ctx, libspotify.ID(id),
			libspotify.Limit(pageSize), libspotify.Offset(offset))
		if err != nil {
			return nil, remap(err)
		}

		if len(page.Items) == 0 {
			// a source insisting it has more while serving
			// empty pages twice in a row is done for good
			emptyPages++
			if len(page.Next) == 0 || emptyPages > 1 {
				break
			}
			continue
		}
		emptyPages = 0

		for _, item := range page.Items {
			if item.Track.Track == nil {
				// deleted or unavailable placeholder
				continue
			}
			track := trackEntity(item.Track.Track)
			tracks = append(tracks, track)
			for _, callback := range progress {
				callback(track)
			}
		}

		offset += len(page.Items)
		if len(page.Next) == 0 {
			break
		}
	}

	return tracks, nil
}
