package spotify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"

	libspotify "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	KindTrack    = "track"
	KindPlaylist = "playlist"
)

var (
	// ErrCredentials signals missing API credentials at startup
	ErrCredentials = errors.New("SPOTIFY_ID or SPOTIFY_KEY not set")

	// ErrMalformedReference signals a reference which is not
	// a track or playlist URL
	ErrMalformedReference = errors.New("malformed reference")

	// ErrNotAccessible signals a private or unreachable collection
	ErrNotAccessible = errors.New("reference not accessible")

	// ErrNotFound signals a reference to a record that does not exist
	ErrNotFound = errors.New("reference not found")

	referenceExpression = regexp.MustCompile(`^(?:https?://)?open\.spotify\.com/(playlist|track)/([A-Za-z0-9]+)`)
)

type Client struct {
	*libspotify.Client
}

// Authenticate builds a catalog client out of the
// client-credentials flow, using environment-provided keys
func Authenticate(ctx context.Context) (*Client, error) {
	id, key := os.Getenv("SPOTIFY_ID"), os.Getenv("SPOTIFY_KEY")
	if len(id) == 0 || len(key) == 0 {
		return nil, ErrCredentials
	}

	config := &clientcredentials.Config{
		ClientID:     id,
		ClientSecret: key,
		TokenURL:     spotifyauth.TokenURL,
	}
	token, err := config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("authentication: %w", err)
	}

	return &Client{libspotify.New(spotifyauth.New().Client(ctx, token))}, nil
}

// ParseReference validates a catalog URL and breaks it
// into its kind and identifier
func ParseReference(reference string) (kind, id string, err error) {
	groups := referenceExpression.FindStringSubmatch(reference)
	if groups == nil {
		return "", "", fmt.Errorf("%w: %s", ErrMalformedReference, reference)
	}
	return groups[1], groups[2], nil
}

func remap(err error) error {
	var apiError libspotify.Error
	if errors.As(err, &apiError) {
		switch apiError.Status {
		case 404:
			return fmt.Errorf("%w: %s", ErrNotFound, apiError.Message)
		case 401, 403:
			return fmt.Errorf("%w: %s", ErrNotAccessible, apiError.Message)
		}
	}
	return err
}
