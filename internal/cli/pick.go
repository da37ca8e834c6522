package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormine/internal/wheel"
)

// pickResult is the JSON form of a pointer mapping.
type pickResult struct {
	colourInfo
	Distance float64 `json:"distance"`
	Ratio    float64 `json:"ratio"`
}

func newPickCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "pick <x> <y>",
		Short: "Map a pixel on the wheel to a colour",
		Long: `Map a pointer position in wheel pixels to the colour under it.

Coordinates are relative to the top-left of a wheel of --size pixels. Points up
to 10px outside the disc select the rim colour; anything further away is
rejected.

Examples:
  colormine pick 150 20
  colormine pick 10 150 --center black --size 512`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid x coordinate: %s", args[0])
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid y coordinate: %s", args[1])
			}
			size, err := a.sizeFlag(cmd.Flags())
			if err != nil {
				return err
			}

			sel, err := wheel.MapPoint(size, a.centerMode(), x, y)
			if err != nil {
				return fmt.Errorf("(%g, %g) on a %dpx wheel: %w", x, y, size, err)
			}

			info := describe(sel.Colour.RGB())
			// The mapped HSV and raw position are more precise than the RGB round trip.
			info.HSV = sel.Colour
			info.Position = sel.Position
			info.Center = a.centerMode().String()

			switch format {
			case "text":
				w := cmd.OutOrStdout()
				info.write(w)
				fmt.Fprintf(w, "  %-9s %.2fpx (ratio %.3f)\n", "distance", sel.Distance, sel.Ratio)
				return nil
			case "json":
				return writeJSON(cmd.OutOrStdout(), pickResult{colourInfo: info, Distance: sel.Distance, Ratio: sel.Ratio})
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}
		},
	}

	cmd.Flags().Int("size", 0, "wheel side in pixels (default from COLORMINE_SIZE or 300)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	return cmd
}
