package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/colormine/internal/colour"
	"github.com/jmylchreest/colormine/internal/export"
)

func newPaletteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Build and export colour palettes",
		Long: `Build a palette from colours given on the command line and/or the history,
then print or export it. Duplicate colours are kept once, in first-seen order.`,
	}

	var fromHistory bool
	build := func(args []string) (*colour.Palette, error) {
		p := colour.NewPalette()
		if fromHistory {
			h, err := a.openHistory()
			if err != nil {
				return nil, err
			}
			for _, hex := range h.Entries() {
				if _, err := p.Add(hex); err != nil {
					return nil, err
				}
			}
		}
		for _, arg := range args {
			rgb, err := colour.Parse(arg)
			if err != nil {
				return nil, fmt.Errorf("invalid colour: %w", err)
			}
			if added, _ := p.Add(rgb.Hex()); !added {
				a.logger.Debug("skipping duplicate colour", "colour", rgb.Hex())
			}
		}
		if p.Len() == 0 {
			return nil, errors.New("palette is empty: pass colours or --from-history")
		}
		return p, nil
	}

	showCmd := &cobra.Command{
		Use:   "show [colour]...",
		Short: "Print the palette as a comma-separated list",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := build(args)
			if err != nil {
				return err
			}
			for _, rgb := range p.ToRGBSlice() {
				a.printf(cmd, "%s\n", colour.FormatColourWithPreview(rgb, 4))
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.Joined())
			return nil
		},
	}

	var (
		format string
		output string
	)
	exportCmd := &cobra.Command{
		Use:   "export [colour]...",
		Short: "Export the palette as CSS, JSON or PDF",
		Long: `Export the palette.

css   writes a :root block with --color-1, --color-2, ... custom properties
json  writes a pretty-printed array of hex strings
pdf   writes a printable swatch sheet (requires --output or a redirected stdout)

When --format is omitted it is taken from the --output extension, defaulting to css.

Examples:
  colormine palette export "#FF0000" "#00FF00"
  colormine palette export --from-history -o palette.json
  colormine palette export --format pdf -o swatches.pdf "#336699" "#FFCC00"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := export.FormatCSS
			switch {
			case cmd.Flags().Changed("format"):
				parsed, err := export.ParseFormat(format)
				if err != nil {
					return err
				}
				f = parsed
			case output != "":
				if guessed, ok := export.FormatFromPath(output); ok {
					f = guessed
				}
			}

			p, err := build(args)
			if err != nil {
				return err
			}

			if output != "" {
				if err := export.WriteFile(output, p, f); err != nil {
					return err
				}
				a.printf(cmd, "Wrote %d colours to %s\n", p.Len(), output)
				return nil
			}

			if f == export.FormatPDF && isTerminal(cmd) {
				return fmt.Errorf("refusing to write pdf to a terminal: use --output %s", f.DefaultFilename())
			}
			out := cmd.OutOrStdout()
			if err := export.Write(out, p, f); err != nil {
				return err
			}
			if f != export.FormatPDF {
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&format, "format", "f", "css", "export format (css, json, pdf)")
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	cmd.PersistentFlags().BoolVar(&fromHistory, "from-history", false, "start the palette from the colour history")
	cmd.AddCommand(showCmd, exportCmd)
	return cmd
}

// isTerminal reports whether the command writes to an interactive terminal.
func isTerminal(cmd *cobra.Command) bool {
	type fder interface{ Fd() uintptr }
	f, ok := cmd.OutOrStdout().(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}
