package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"glance/internal/watch"
	"glance/pkg/types"

	"github.com/spf13/cobra"
)

var watchDest string

var watchCmd = &cobra.Command{
	Use:   "watch <dir>...",
	Short: "Watch local directories and auto-upload new media",
	Long: `Watches the given directories and uploads any media file that
appears or changes, after a short settle delay. The upload.include
patterns from the config restrict which filenames qualify.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dest, err := types.ParsePath(watchDest)
		if err != nil {
			return err
		}
		if dest.IsTrash() {
			return fmt.Errorf("cannot upload into the trash")
		}

		includes, err := cfg.IncludeGlobs()
		if err != nil {
			return err
		}

		watcher, err := watch.New(client, dest, includes)
		if err != nil {
			return err
		}
		for _, dir := range args {
			if err := watcher.AddDirectory(dir); err != nil {
				return err
			}
		}
		if err := watcher.Start(); err != nil {
			return err
		}
		defer watcher.Stop()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Watching. Press Ctrl+C to stop.")
		for {
			select {
			case result, ok := <-watcher.Results():
				if !ok {
					return nil
				}
				if result.Err != nil {
					fmt.Fprintf(os.Stderr, "⚠️ %s: %v\n", result.Path, result.Err)
				} else {
					fmt.Fprintf(out, "⬆ %s\n", result.Path)
				}
			case <-sigChan:
				fmt.Fprintln(out, "Stopping.")
				return nil
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchDest, "dest", "d", "", "destination folder path (default: root)")
	rootCmd.AddCommand(watchCmd)
}
