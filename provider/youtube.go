package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/calliari/tunegrab/util"
)

const (
	searchURL = "https://www.youtube.com/results?search_query=%s"
	watchURL  = "https://www.youtube.com/watch?v="

	retryAttempts = 3
	retryDelay    = time.Second
)

var videoIDExpression = regexp.MustCompile(`watch\?v=([A-Za-z0-9_\-]{11})`)

// Search issues the query against the provider and extracts
// candidate assets from the results page, in page order.
// Transport failures are retried a fixed number of times
// before escalating to ErrUnreachable.
func Search(ctx context.Context, query string) ([]*Match, error) {
	if len(query) == 0 {
		return nil, ErrNoMatch
	}

	var document *goquery.Document
	if err := util.Retry(retryAttempts, retryDelay, func() error {
		request, err := http.NewRequestWithContext(
			ctx, http.MethodGet, fmt.Sprintf(searchURL, url.QueryEscape(query)), nil)
		if err != nil {
			return err
		}

		response, err := http.DefaultClient.Do(request)
		if err != nil {
			return err
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			return fmt.Errorf("results page: %s", response.Status)
		}

		document, err = goquery.NewDocumentFromReader(response.Body)
		return err
	}); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, err)
	}

	page, err := document.Html()
	if err != nil {
		return nil, err
	}

	var (
		matches []*Match
		seen    = map[string]bool{}
	)
	for _, groups := range videoIDExpression.FindAllStringSubmatch(page, -1) {
		id := groups[1]
		if seen[id] {
			continue
		}
		seen[id] = true
		matches = append(matches, &Match{ID: id, Rank: len(matches)})
	}

	if len(matches) == 0 {
		return nil, ErrNoMatch
	}
	return matches, nil
}
