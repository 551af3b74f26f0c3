package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-file-organizer/internal/config"
	"github.com/litescript/ls-file-organizer/internal/organizer"
	"github.com/litescript/ls-file-organizer/internal/watch"
)

type processOptions struct {
	source     string
	backup     string
	sourceExts []string
	backupExts []string
	jsonOutput bool
	dryRun     bool
	watch      bool
}

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var opts processOptions

	cmd := &cobra.Command{
		Use:   "process [main-folder]",
		Short: "Copy source files and their backups into move/<extension>/",
		Long: `Copies every source file whose extension is whitelisted into
<main-folder>/move/<extension>/, together with every whitelisted backup file
sharing its base name. Without a main folder argument a folder picker opens.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var mainFolder string
			if len(args) == 1 {
				mainFolder = args[0]
			} else {
				picked, err := ctx.pickFolder(cmd, "Select the main folder", "")
				if err != nil {
					return err
				}
				mainFolder = picked
			}

			req := ctx.buildRequest(cmd, mainFolder, opts)

			lock, err := acquireRunLock(mainFolder)
			if err != nil {
				return err
			}
			defer func() { _ = lock.Unlock() }()

			if opts.watch {
				return ctx.watchAndProcess(cmd, req, opts.jsonOutput)
			}
			return ctx.processOnce(cmd, req, opts.jsonOutput)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.source, "source", "s", "", "Source subfolder (defaults to defaults.source_folder)")
	flags.StringVarP(&opts.backup, "backup", "b", "", "Backup subfolder (defaults to defaults.backup_folder)")
	flags.StringSliceVar(&opts.sourceExts, "source-ext", nil, "Source extensions, e.g. .pdf (repeatable)")
	flags.StringSliceVar(&opts.backupExts, "backup-ext", nil, "Backup extensions, e.g. .png (repeatable)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Output the result as JSON")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Show what would be copied without writing anything")
	flags.BoolVar(&opts.watch, "watch", false, "Keep running and re-process when source or backup files change")

	return cmd
}

// buildRequest fills unset flags from the configured defaults.
func (c *commandContext) buildRequest(cmd *cobra.Command, mainFolder string, opts processOptions) organizer.Request {
	defaults := c.config.Defaults
	flags := cmd.Flags()

	req := organizer.Request{
		MainFolder:       mainFolder,
		SourceFolder:     defaults.SourceFolder,
		BackupFolder:     defaults.BackupFolder,
		SourceExtensions: defaults.SourceExtensions,
		BackupExtensions: defaults.BackupExtensions,
		DryRun:           opts.dryRun,
	}
	if flags.Changed("source") {
		req.SourceFolder = opts.source
	}
	if flags.Changed("backup") {
		req.BackupFolder = opts.backup
	}
	if flags.Changed("source-ext") {
		req.SourceExtensions = config.NormalizeExtensions(opts.sourceExts)
	}
	if flags.Changed("backup-ext") {
		req.BackupExtensions = config.NormalizeExtensions(opts.backupExts)
	}
	return req
}

func (c *commandContext) processOnce(cmd *cobra.Command, req organizer.Request, jsonOutput bool) error {
	result, err := c.service.ProcessFiles(cmd.Context(), req)
	if err != nil {
		return err
	}
	if jsonOutput {
		return writeJSON(cmd, result)
	}
	printResult(cmd.OutOrStdout(), result, req.DryRun)
	return nil
}

// watchAndProcess processes once, then again after every settled burst of
// changes in the source or backup folder, until the context is cancelled.
// Runs never overlap.
func (c *commandContext) watchAndProcess(cmd *cobra.Command, req organizer.Request, jsonOutput bool) error {
	if err := c.processOnce(cmd, req, jsonOutput); err != nil {
		return err
	}

	dirs := []string{
		filepath.Join(req.MainFolder, req.SourceFolder),
		filepath.Join(req.MainFolder, req.BackupFolder),
	}
	w, err := watch.New(dirs, c.config.DebounceDuration(), c.logger)
	if err != nil {
		return err
	}
	defer w.Stop()

	c.logger.Info("watching for changes", "source", dirs[0], "backup", dirs[1])
	if !jsonOutput {
		fmt.Fprintln(cmd.ErrOrStderr(), "Watching for changes, press Ctrl+C to stop")
	}

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.Changes():
			if err := c.processOnce(cmd, req, jsonOutput); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}
	}
}
