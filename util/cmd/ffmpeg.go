package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/calliari/tunegrab/util"
)

// FFmpeg transcodes the input audio file into an MP3 at the
// output path, capped at the given bitrate
func FFmpeg(ctx context.Context, input, output string, bitrateKbps int) error {
	var (
		buffer bytes.Buffer
		cmd    = exec.CommandContext(ctx, "ffmpeg",
			"-y",
			"-i", input,
			"-vn",
			"-c:a", "libmp3lame",
			"-b:a", fmt.Sprintf("%dk", bitrateKbps),
			output,
		)
	)
	cmd.Stdout = &buffer
	cmd.Stderr = &buffer
	if err := cmd.Run(); err != nil {
		return errors.New(util.Excerpt(buffer.String(), 512))
	}
	return nil
}
