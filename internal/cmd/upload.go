package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"glance/pkg/types"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var uploadDest string

var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Upload files to a gallery folder",
	Long: `Uploads files one at a time. A failed file is reported and
skipped; the rest of the batch still uploads.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dest, err := types.ParsePath(uploadDest)
		if err != nil {
			return err
		}
		if dest.IsTrash() {
			return fmt.Errorf("cannot upload into the trash")
		}

		ctx := context.Background()
		bar := progressbar.Default(int64(len(args)), "uploading")

		var failed []string
		for _, local := range args {
			if err := uploadOne(ctx, dest, local); err != nil {
				fmt.Fprintf(os.Stderr, "⚠️ %s: %v\n", local, err)
				failed = append(failed, local)
			}
			bar.Add(1)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %d of %d file(s).\n", len(args)-len(failed), len(args))
		if len(failed) > 0 {
			return fmt.Errorf("%d upload(s) failed", len(failed))
		}
		return nil
	},
}

func uploadOne(ctx context.Context, dest types.Path, local string) error {
	f, err := os.Open(local)
	if err != nil {
		return err
	}
	defer f.Close()
	return client.UploadFile(ctx, dest, filepath.Base(local), f)
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadDest, "dest", "d", "", "destination folder path (default: root)")
	rootCmd.AddCommand(uploadCmd)
}
