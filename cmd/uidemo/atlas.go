package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/asset"
)

func newAtlasCmd() *cobra.Command {
	var (
		fonts   fontFlags
		family  string
		size    float32
		charset string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "atlas",
		Short: "Rasterize a text style and write its glyph atlas as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []ui.ContextOption
			if charset != "" {
				opts = append(opts, ui.WithCharset(charset))
			}
			ctx, err := fonts.context(opts...)
			if err != nil {
				return err
			}
			style, err := ctx.ComputeStyle(ui.TextStyle{FontFamily: family, FontSize: size, Color: ui.Black})
			if err != nil {
				return err
			}
			img, err := style.Sheet().Compose()
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := img.EncodePNG(f); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			a := style.Sheet().Atlas()
			fmt.Fprintln(cmd.OutOrStdout(), styleTitle.Render(fmt.Sprintf(
				"%s %gpx: %d glyphs, %dx%d atlas, %d rows, %.0f%% used",
				family, size, style.Len(), a.Width(), a.Height(), a.RowCount(), a.Utilization()*100)))
			fmt.Fprintln(cmd.OutOrStdout(), styleDim.Render("written to "+output))
			return nil
		},
	}
	fonts.register(cmd)
	cmd.Flags().StringVar(&family, "family", asset.DefaultFontFamily, "font family")
	cmd.Flags().Float32Var(&size, "size", 20, "font size in pixels")
	cmd.Flags().StringVar(&charset, "charset", "", "runes to rasterize (default printable ASCII)")
	cmd.Flags().StringVarP(&output, "output", "o", "atlas.png", "output file")
	return cmd
}
