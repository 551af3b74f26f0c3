package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list <path>",
		Short: "List the immediate subfolders of a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folders, err := ctx.service.ListFolder(args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, folders)
			}
			out := cmd.OutOrStdout()
			for _, name := range folders {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as a JSON array")
	return cmd
}
