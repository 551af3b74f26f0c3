package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-file-organizer/internal/config"
	"github.com/litescript/ls-file-organizer/internal/logging"
	"github.com/litescript/ls-file-organizer/internal/organizer"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// commandContext carries state shared by subcommands once the root command
// has loaded configuration.
type commandContext struct {
	flags   *rootFlags
	config  config.Config
	logger  *slog.Logger
	service *organizer.Service
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{
		flags:  flags,
		config: config.Default(),
	}
}

func (c *commandContext) init(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath())
	if err != nil {
		return err
	}

	if lvl := strings.TrimSpace(c.flags.logLevel); lvl != "" {
		cfg.Log.Level = lvl
	}
	if format := strings.TrimSpace(c.flags.logFormat); format != "" {
		cfg.Log.Format = format
	}

	c.config = cfg
	c.logger = logging.New(cfg.Log, cmd.ErrOrStderr())
	slog.SetDefault(c.logger)
	c.service = organizer.New(nil, c.logger)
	return nil
}

func (c *commandContext) configPath() string {
	if c.flags == nil {
		return ""
	}
	return strings.TrimSpace(c.flags.configPath)
}
