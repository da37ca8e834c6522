package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormine/internal/colour"
)

func newHarmonyCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "harmony <colour>",
		Short: "Show colour harmonies for a colour",
		Long: `Show the complementary, analogous, triadic and split-complementary
colours for a base colour. Saturation and value are kept; only the hue rotates.

Examples:
  colormine harmony "#3399FF"
  colormine harmony "255,128,0" --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := colour.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid colour: %w", err)
			}
			harmonies := colour.Harmonies(colour.RGBToHSV(rgb))

			switch format {
			case "text":
				table := NewTable([]string{"Harmony", "Offsets", "Colours"})
				for _, h := range harmonies {
					offsets := make([]string, len(h.Offsets))
					swatches := make([]string, len(h.Colours))
					for i, off := range h.Offsets {
						offsets[i] = fmt.Sprintf("%+.0f°", off)
					}
					for i, c := range h.Colours {
						swatches[i] = colour.FormatColourWithPreview(c.RGB(), 2)
					}
					table.AddRow([]string{h.Name, strings.Join(offsets, " "), strings.Join(swatches, "  ")})
				}
				a.printf(cmd, "%s\n\n", colour.FormatColourWithLabel(rgb, "Base", 4))
				fmt.Fprint(cmd.OutOrStdout(), table.Render())
				return nil
			case "json":
				out := make(map[string][]string, len(harmonies))
				for _, h := range harmonies {
					for _, c := range h.Colours {
						out[h.Name] = append(out[h.Name], c.Hex())
					}
				}
				return writeJSON(cmd.OutOrStdout(), out)
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	return cmd
}
