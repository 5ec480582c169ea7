package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-ghbutton/pkg/render"
)

type globalFlags struct {
	verbose bool
	locale  string
	locales string
}

type app struct {
	stdout io.Writer
	stderr io.Writer
	flags  globalFlags
	logger zerolog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "ghbutton",
		Short:         "Render GitHub social buttons",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			a.logger = newLogger(a.stderr, a.flags.verbose)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.flags.locale, "locale", "", "label locale (en, es, fr, de, ...)")
	root.PersistentFlags().StringVar(&a.flags.locales, "locales-dir", "", "directory with extra <locale>.yaml catalogs")

	root.AddCommand(a.renderCmd())
	root.AddCommand(a.pageCmd())
	root.AddCommand(a.typesCmd())

	return root
}

func newLogger(out io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if out == nil {
		out = os.Stderr
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// catalog returns the bundled catalog, extended with --locales-dir files.
func (a *app) catalog() (*render.Catalog, error) {
	catalog, err := render.DefaultCatalog()
	if err != nil {
		return nil, err
	}
	if a.flags.locales == "" {
		return catalog, nil
	}
	if err := catalog.LoadFS(os.DirFS(a.flags.locales)); err != nil {
		return nil, fmt.Errorf("load locales from %s: %w", a.flags.locales, err)
	}
	a.logger.Debug().Strs("locales", catalog.Locales()).Msg("catalog loaded")
	return catalog, nil
}
