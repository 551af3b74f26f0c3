package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-file-organizer/internal/tui"
)

func newSelectCommand(ctx *commandContext) *cobra.Command {
	var startDir string

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Choose a folder interactively and print its absolute path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ctx.pickFolder(cmd, "Select a folder", startDir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&startDir, "start", "", "Directory to start browsing from (defaults to picker.start_dir)")
	return cmd
}

// pickFolder runs the folder picker using the command's streams and the
// configured picker settings.
func (c *commandContext) pickFolder(cmd *cobra.Command, title, startDir string) (string, error) {
	if startDir == "" {
		startDir = c.config.Picker.StartDir
	}
	return tui.SelectFolder(cmd.Context(), tui.Options{
		Title:      title,
		StartDir:   startDir,
		ShowHidden: c.config.Picker.ShowHidden,
		Input:      cmd.InOrStdin(),
		Output:     cmd.ErrOrStderr(),
	})
}
