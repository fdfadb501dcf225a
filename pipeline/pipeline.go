package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arunsworld/nursery"
	"github.com/calliari/tunegrab/collision"
	"github.com/calliari/tunegrab/downloader"
	"github.com/calliari/tunegrab/entity"
	"github.com/calliari/tunegrab/processor"
	"github.com/calliari/tunegrab/provider"
	"github.com/calliari/tunegrab/tui"
	"github.com/calliari/tunegrab/util"
	"github.com/thanhpk/randstr"
)

// skipped marks an item the user chose to leave alone,
// neither a success nor a failure worth shouting about
var errSkipped = errors.New("skipped on user decision")

// Pipeline sequences match finding, acquisition, collision
// handling and tagging over a list of resolved tracks, one
// item at a time
type Pipeline struct {
	OutputDir  string
	Bitrate    int
	Collisions *collision.Resolver

	scratch string
}

// New prepares a run, staging everything into a dedicated
// scratch directory removed when the run ends
func New(outputDir string, bitrateKbps int) (*Pipeline, error) {
	scratch := filepath.Join(os.TempDir(), "tunegrab-"+randstr.Hex(8))
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, err
	}
	return &Pipeline{
		OutputDir:  outputDir,
		Bitrate:    bitrateKbps,
		Collisions: collision.New(tui.Reads),
		scratch:    scratch,
	}, nil
}

// Run processes every track in resolution order, isolating
// per-item failures: whatever goes wrong with one item gets
// logged against its identity and the run moves on.
// Cancellation stops before the next item and still yields
// a summary of what completed so far.
func (pipeline *Pipeline) Run(ctx context.Context, tracks []*entity.Track) *entity.Summary {
	summary := entity.NewSummary(len(tracks))
	defer os.RemoveAll(pipeline.scratch)

	for position, track := range tracks {
		select {
		case <-ctx.Done():
			tui.Printf("interrupted, %d of %d item(s) processed", position, summary.Total)
			return summary.Close()
		default:
		}

		tui.Printf("(%d/%d) %s by %s", position+1, summary.Total,
			processor.Normalize(track.Title), processor.Normalize(track.Artist()))
		if err := pipeline.process(ctx, track); errors.Is(err, errSkipped) {
			tui.Printf("skip %s by %s", track.Title, track.Artist())
			continue
		} else if err != nil {
			tui.Errorf("%s by %s: %s", track.Title, track.Artist(), err)
			continue
		}
		summary.Succeed()
	}
	return summary.Close()
}

func (pipeline *Pipeline) process(ctx context.Context, track *entity.Track) error {
	tui.Statusf("search %s", track.Query())
	matches, err := provider.Search(ctx, track.Query())
	if err != nil {
		return err
	}
	track.UpstreamURL = matches[0].URL()

	destination := filepath.Join(pipeline.OutputDir, track.Path().Final())
	if _, err := os.Stat(destination); err == nil && !pipeline.Collisions.Resolve(destination) {
		return errSkipped
	}

	staged := filepath.Join(pipeline.scratch, track.Path().Download())
	if err := nursery.RunConcurrentlyWithContext(ctx,
		pipeline.collectAudio(track, staged),
		pipeline.collectArtwork(track),
	); err != nil {
		return err
	}

	if err := processor.Do(track, staged); err != nil {
		return err
	}
	if err := util.FileMoveOrCopy(staged, destination, true); err != nil {
		return err
	}
	if info, err := os.Stat(destination); err == nil {
		tui.Printf("installed %s (%s)", filepath.Base(destination), util.HumanizeBytes(int(info.Size())))
	}
	return nil
}

// collectAudio pulls the matched asset's stream and
// transcodes it into the scratch area
func (pipeline *Pipeline) collectAudio(track *entity.Track, staged string) nursery.ConcurrentJob {
	return func(ctx context.Context, ch chan error) {
		tui.Statusf("download %s", track.UpstreamURL)
		if err := downloader.Audio(ctx, track.UpstreamURL, staged, pipeline.Bitrate); err != nil {
			ch <- err
		}
	}
}

// collectArtwork pulls the cover image referenced by the
// identity, to be embedded at tag time
func (pipeline *Pipeline) collectArtwork(track *entity.Track) nursery.ConcurrentJob {
	return func(ctx context.Context, ch chan error) {
		if len(track.Artwork.URL) == 0 {
			return
		}

		artwork := make(chan []byte, 1)
		defer close(artwork)
		if err := downloader.Blob(ctx, track.Artwork.URL,
			util.CacheFile(track.Path().Artwork()),
			processor.Artwork{}, artwork); err != nil {
			ch <- fmt.Errorf("artwork: %w", err)
			return
		}
		track.Artwork.Data = <-artwork
	}
}
