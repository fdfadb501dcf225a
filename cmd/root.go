package cmd

import (
	"os"

	"github.com/calliari/tunegrab/tui"
	"github.com/calliari/tunegrab/util"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cmdRoot = &cobra.Command{
	Use:   "tunegrab",
	Short: "Build a correctly-tagged local music library out of catalog references",
}

func init() {
	// credentials may live in a local .env file
	util.ErrSuppress(godotenv.Load())
}

func Execute() {
	if err := cmdRoot.Execute(); err != nil {
		tui.Errorf("%s", err)
		os.Exit(1)
	}
}
