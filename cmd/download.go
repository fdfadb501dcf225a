package cmd

import (
	"errors"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/calliari/tunegrab/entity"
	"github.com/calliari/tunegrab/pipeline"
	"github.com/calliari/tunegrab/resolver"
	"github.com/calliari/tunegrab/spotify"
	"github.com/calliari/tunegrab/tui"
	"github.com/calliari/tunegrab/util"
	"github.com/spf13/cobra"
)

func init() {
	cmdRoot.AddCommand(cmdDownload())
}

func cmdDownload() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "download [url]",
		Short:        "Download and tag every track behind a catalog track or playlist URL",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				output  = util.ErrWrap(xdg.UserDirs.Music)(cmd.Flags().GetString("output"))
				bitrate = util.ErrWrap(320)(cmd.Flags().GetInt("bitrate"))
			)

			reference := ""
			if len(args) > 0 {
				reference = args[0]
			} else {
				reference = tui.Reads("Enter a track or playlist URL:")
			}
			if len(reference) == 0 {
				return errors.New("no track or playlist URL supplied")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			client, err := spotify.Authenticate(ctx)
			if err != nil {
				return err
			}

			catalog := &resolver.Catalog{Client: client, Progress: func(track *entity.Track) {
				tui.Statusf("fetch %s by %s", track.Title, track.Artist())
			}}
			tracks, err := catalog.Resolve(ctx, reference)
			if err != nil {
				return err
			}
			tui.Printf("%d track(s) to download", len(tracks))

			run, err := pipeline.New(output, bitrate)
			if err != nil {
				return err
			}
			summary := run.Run(ctx, tracks)

			if absOutput, err := filepath.Abs(output); err == nil {
				output = absOutput
			}
			tui.Printf("download location: %s", output)
			tui.Printf("DOWNLOAD COMPLETED: %d/%d song(s) in %s",
				summary.Succeeded, summary.Total, summary.Elapsed())
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", xdg.UserDirs.Music, "Output directory")
	cmd.Flags().IntP("bitrate", "b", 320, "Target MP3 bitrate, in kbps")
	return cmd
}
