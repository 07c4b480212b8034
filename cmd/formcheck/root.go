package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Gobd/fieldvalidation/internal/config"
	"github.com/Gobd/fieldvalidation/internal/formdef"
	"github.com/Gobd/fieldvalidation/internal/logger"
)

// app carries state shared by the sub-commands once flags are parsed.
type app struct {
	cfg    config.Config
	log    *slog.Logger
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}

	var (
		formsFile string
		logLevel  string
		logFormat string
	)

	root := &cobra.Command{
		Use:   "formcheck",
		Short: "Validate form submissions against declarative field rules",
		Long: `formcheck loads form definitions from YAML and validates submitted
values against each field's ordered rule list. The first failing rule of a
field is reported with its message.

Settings come from FORMCHECK_* environment variables (and an optional .env
file); flags override them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("forms") {
				cfg.FormsFile = formsFile
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}

			level, err := logger.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			format := logger.Format(cfg.LogFormat)
			if format != logger.FormatJSON && format != logger.FormatText {
				return fmt.Errorf("invalid log format %q (valid: json, text)", cfg.LogFormat)
			}
			a.cfg = cfg
			a.log = logger.New(
				logger.WithLevel(level),
				logger.WithFormat(format),
				logger.WithOutput(a.stderr),
			)
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&formsFile, "forms", "f", "", "form definitions file (default $FORMCHECK_FORMS or forms.yaml)")
	pf.StringVarP(&logLevel, "log-level", "l", "", "log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "", "log format: text, json")

	root.AddCommand(newCheckCmd(a), newServeCmd(a))
	return root
}

func (a *app) loadForms() (*formdef.File, error) {
	file, err := formdef.Load(a.cfg.FormsFile)
	if err != nil {
		return nil, err
	}
	a.log.Debug("form definitions loaded",
		slog.String("path", a.cfg.FormsFile),
		slog.Any("forms", file.Names()),
	)
	return file, nil
}
