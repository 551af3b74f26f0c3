// File Organizer copies files from a source folder and a backup folder into
// extension-named folders under <main>/move, pairing backups with source
// files by base name. It also lists subfolders and offers an interactive
// folder picker for choosing the main folder.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/litescript/ls-file-organizer/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Replaced once configuration is loaded.
	logging.Setup(logging.DefaultConfig())

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}
