// Package cmd wires the CLI: every subcommand shares the config,
// session and API client prepared here.
package cmd

import (
	"fmt"

	"glance/internal/api"
	"glance/internal/config"
	"glance/internal/log"
	"glance/internal/session"
	"glance/pkg/types"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool

	cfg    *config.Config
	sess   *session.Store
	client *api.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "glance",
	Short: "Browse and manage a remote media gallery from the terminal",
	Long: `Glance is a terminal client for a self-hosted media gallery.

Browse folders, view media in a lightbox with zoom and slideshow,
upload new files, and manage the trash, all against the gallery's
HTTP API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.LoadConfigFile(cfgFile)
		} else {
			cfg, err = config.LoadConfig()
		}
		if err != nil {
			fmt.Printf("⚠️ Warning: %v\n", err)
			fmt.Println("💡 Using default settings.")
			cfg = config.New()
		}
		types.SetTrashFolderName(cfg.Server.TrashFolder)

		dir, err := config.DefaultDir()
		if err != nil {
			return err
		}
		if err := log.Init(dir, debug); err != nil {
			return err
		}

		sess = session.Default(dir)
		client = api.NewClient(cfg.Server.URL, sess)
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/glance/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}
