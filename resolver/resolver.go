package resolver

import (
	"context"

	"github.com/calliari/tunegrab/entity"
	"github.com/calliari/tunegrab/spotify"
)

// Resolver turns a reference, either a catalog URL or a local
// file name, into one or more resolved track identities
type Resolver interface {
	Resolve(ctx context.Context, reference string) ([]*entity.Track, error)
}

// Catalog resolves references against the structured
// upstream catalog, expanding collections eagerly
type Catalog struct {
	Client   *spotify.Client
	Progress func(*entity.Track)
}

func (catalog *Catalog) Resolve(ctx context.Context, reference string) ([]*entity.Track, error) {
	kind, id, err := spotify.ParseReference(reference)
	if err != nil {
		return nil, err
	}

	if kind == spotify.KindTrack {
		track, err := catalog.Client.Track(ctx, id)
		if err != nil {
			return nil, err
		}
		if catalog.Progress != nil {
			catalog.Progress(track)
		}
		return []*entity.Track{track}, nil
	}

	if catalog.Progress != nil {
		return catalog.Client.Playlist(ctx, id, catalog.Progress)
	}
	return catalog.Client.Playlist(ctx, id)
}
