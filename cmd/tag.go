package cmd

import (
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/calliari/tunegrab/entity"
	"github.com/calliari/tunegrab/musicbrainz"
	"github.com/calliari/tunegrab/processor"
	"github.com/calliari/tunegrab/resolver"
	"github.com/calliari/tunegrab/tui"
	"github.com/spf13/cobra"
)

func init() {
	cmdRoot.AddCommand(cmdTag())
}

func cmdTag() *cobra.Command {
	return &cobra.Command{
		Use:          "tag [path]",
		Short:        "Tag local MP3 files from their filenames, corroborated against MusicBrainz",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			var paths []string
			err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !entry.IsDir() && strings.EqualFold(filepath.Ext(path), ".mp3") {
					paths = append(paths, path)
				}
				return nil
			})
			if err != nil {
				return err
			}
			tui.Printf("%d file(s) to tag", len(paths))

			summary := entity.NewSummary(len(paths))
			heuristic := &resolver.Heuristic{Client: musicbrainz.New()}
			for index, path := range paths {
				select {
				case <-ctx.Done():
					tui.Printf("interrupted")
					summary.Close()
					tui.Printf("tagged %d/%d file(s) in %s", summary.Succeeded, summary.Total, summary.Elapsed())
					return nil
				default:
				}

				tui.Statusf("(%d/%d) %s", index+1, len(paths), filepath.Base(path))
				tracks, err := heuristic.Resolve(ctx, filepath.Base(path))
				if err != nil {
					tui.Errorf("cannot parse %s: %s", filepath.Base(path), err)
					continue
				}

				track := tracks[0]
				if track.Partial {
					tui.Printf("no catalog match for %s, tagging from filename only", filepath.Base(path))
				}
				if err := processor.Do(track, path); err != nil {
					tui.Errorf("cannot tag %s: %s", filepath.Base(path), err)
					continue
				}
				tui.Printf("=> Title='%s', Artist='%s', Album='%s', Genre='%s'",
					processor.Normalize(track.Title), processor.Normalize(track.Artist()),
					processor.Normalize(track.Album), processor.Normalize(track.Genre))
				summary.Succeed()
			}
			summary.Close()

			tui.Printf("tagged %d/%d file(s) in %s", summary.Succeeded, summary.Total, summary.Elapsed())
			return nil
		},
	}
}
