package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-file-organizer/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "file-organizer v%s\n", version.Version)
		},
	}
}
