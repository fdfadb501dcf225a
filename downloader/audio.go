package downloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/calliari/tunegrab/util"
	"github.com/calliari/tunegrab/util/cmd"
)

// Audio acquires the asset's audio stream into the scratch
// area and transcodes it to an MP3 at the given path, capped
// at the target bitrate. The raw download is discarded once
// transcoding is done; a failed transcode leaves no partial
// output behind. The step itself never retries.
func Audio(ctx context.Context, url, path string, bitrateKbps int) error {
	stem := strings.TrimSuffix(path, filepath.Ext(path))

	raw, err := cmd.YouTubeDl(ctx, url, stem+"-raw")
	if err != nil {
		return fmt.Errorf("stream fetch: %w", err)
	}
	defer os.Remove(raw)

	if err := cmd.FFmpeg(ctx, raw, path, bitrateKbps); err != nil {
		util.ErrSuppress(os.Remove(path))
		return fmt.Errorf("%w: %s", ErrTranscode, err)
	}
	return nil
}
