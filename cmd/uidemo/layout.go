package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/internal/scene"
)

func newLayoutCmd() *cobra.Command {
	var fonts fontFlags

	cmd := &cobra.Command{
		Use:   "layout <scene.toml>",
		Short: "Lay out a scene and print the resulting shapes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			s, err := scene.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
			if err != nil {
				return err
			}
			root, err := s.Build()
			if err != nil {
				return err
			}
			ctx, err := fonts.context()
			if err != nil {
				return err
			}

			frame, err := ui.BuildTree(root, s.Constraints(), ctx)
			if err != nil {
				return err
			}
			charmlog.Debug("scene laid out", "path", path, "shapes", len(frame.Shapes))
			printFrame(cmd.OutOrStdout(), frame)
			return nil
		},
	}
	fonts.register(cmd)
	return cmd
}

func printFrame(w io.Writer, frame *ui.Frame) {
	for _, s := range frame.Shapes {
		fmt.Fprintln(w, formatShape(s))
	}
	summary := fmt.Sprintf("%d shapes, size %v", len(frame.Shapes), frame.Size)
	if frame.Truncated {
		summary += " " + styleWarn.Render("(text truncated)")
	}
	fmt.Fprintln(w, styleTitle.Render(summary))
}

func formatShape(s ui.UIShape) string {
	pos := styleDim.Render(fmt.Sprintf("(%g,%g) %v", s.Offset.DX, s.Offset.DY, s.Size))
	switch sh := s.Shape.(type) {
	case ui.RectangleShape:
		return fmt.Sprintf("%s %s %s", styleRect.Render("rect "), pos, swatch(sh.Color))
	case ui.GlyphShape:
		return fmt.Sprintf("%s %s %s %q uv=%.3f", styleGlyph.Render("glyph"), pos, swatch(sh.Color), sh.Char, sh.UV)
	default:
		return fmt.Sprintf("%T %s", sh, pos)
	}
}
