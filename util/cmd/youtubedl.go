package cmd

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"

	"github.com/calliari/tunegrab/util"
)

// YouTubeDl fetches the best available audio stream for the
// given URL into a file named after stem plus the source
// container extension, and returns the path it landed at
func YouTubeDl(ctx context.Context, url, stem string) (string, error) {
	var (
		output bytes.Buffer
		cmd    = exec.CommandContext(ctx, "yt-dlp",
			"--format", "bestaudio",
			"--no-playlist",
			"--output", stem+".%(ext)s",
			"--continue",
			"--no-overwrites",
			url,
		)
	)
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		return "", errors.New(util.Excerpt(output.String(), 512))
	}

	downloads, err := filepath.Glob(stem + ".*")
	if err != nil {
		return "", err
	}
	if len(downloads) == 0 {
		return "", errors.New("no downloaded stream found at " + stem)
	}
	return downloads[0], nil
}
