package musicbrainz

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
)

const (
	searchURL   = "https://musicbrainz.org/ws/2/recording"
	searchLimit = 5
	userAgent   = "tunegrab/1.0 (https://github.com/calliari/tunegrab)"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Recording is the catalog record corroborating
// a heuristic identity guess
type Recording struct {
	Title        string `json:"title"`
	ArtistCredit []struct {
		Artist struct {
			Name string `json:"name"`
		} `json:"artist"`
	} `json:"artist-credit"`
	Releases []struct {
		Title string `json:"title"`
		Date  string `json:"date"`
	} `json:"releases"`
}

// Artist returns the credited artist name, if any
func (recording *Recording) Artist() string {
	if len(recording.ArtistCredit) == 0 {
		return ""
	}
	return recording.ArtistCredit[0].Artist.Name
}

// Release returns title and date of the first release
// carrying the recording, if any
func (recording *Recording) Release() (title, date string) {
	if len(recording.Releases) == 0 {
		return "", ""
	}
	return recording.Releases[0].Title, recording.Releases[0].Date
}

type Client struct {
	HTTPClient *http.Client
}

func New() *Client {
	return &Client{HTTPClient: http.DefaultClient}
}

// SearchRecording looks a recording up by guessed artist and
// title, returning the best (first) result, or nil when the
// catalog has nothing to offer
func (client *Client) SearchRecording(ctx context.Context, artist, title string) (*Recording, error) {
	query := url.Values{}
	query.Set("query", fmt.Sprintf("recording:%q AND artist:%q", title, artist))
	query.Set("limit", fmt.Sprint(searchLimit))
	query.Set("fmt", "json")

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("User-Agent", userAgent)

	response, err := client.HTTPClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recording search: %s", response.Status)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Recordings []*Recording `json:"recordings"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	if len(payload.Recordings) == 0 {
		return nil, nil
	}
	return payload.Recordings[0], nil
}
