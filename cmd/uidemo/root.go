package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/asset"
	"github.com/gogpu/ui/glyph"
)

// newLogger creates a charm logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "uidemo",
		Short:        "uidemo lays out widget trees headlessly",
		Version:      ui.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			charmlog.SetDefault(logger)
			ui.SetLogger(slog.New(logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLayoutCmd())
	root.AddCommand(newAtlasCmd())

	return root
}

// fontFlags are the flags shared by commands that build a ui.Context.
type fontFlags struct {
	monospace bool
	fonts     []string
}

func (f *fontFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.monospace, "monospace", false, "use block glyphs instead of rasterizing fonts")
	cmd.Flags().StringArrayVar(&f.fonts, "font", nil, "register a TTF/OTF file under its family name (repeatable)")
}

// context builds a ui.Context with the Go fonts and every --font file.
func (f *fontFlags) context(opts ...ui.ContextOption) (*ui.Context, error) {
	loader := asset.NewLoader(os.DirFS("."), asset.WithGoFonts())
	for _, path := range f.fonts {
		if filepath.IsAbs(path) {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			family, err := loader.RegisterFont("", data)
			if err != nil {
				return nil, err
			}
			charmlog.Debug("font registered", "path", path, "family", family)
			continue
		}
		family, err := loader.LoadFont(filepath.ToSlash(path))
		if err != nil {
			return nil, err
		}
		charmlog.Debug("font registered", "path", path, "family", family)
	}

	opts = append([]ui.ContextOption{ui.WithLoader(loader)}, opts...)
	if f.monospace {
		opts = append(opts, ui.WithRasterizerFactory(glyph.MonospaceFactory))
	}
	return ui.NewContext(opts...), nil
}
