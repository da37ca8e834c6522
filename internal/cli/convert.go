package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormine/internal/colour"
)

// colourInfo is the machine-readable description of one colour.
type colourInfo struct {
	Hex      string          `json:"hex"`
	RGB      colour.RGB      `json:"rgb"`
	HSV      colour.HSV      `json:"hsv"`
	Position colour.Position `json:"position"`
	Center   string          `json:"center"`
	Name     string          `json:"name"`
	Exact    bool            `json:"exact_name"`
}

func describe(rgb colour.RGB) colourInfo {
	hsv := colour.RGBToHSV(rgb)
	name, exact := colour.NearestName(rgb)
	return colourInfo{
		Hex:      rgb.Hex(),
		RGB:      rgb,
		HSV:      hsv,
		Position: colour.PositionFromHSV(hsv),
		Center:   colour.ModeFor(hsv).String(),
		Name:     name,
		Exact:    exact,
	}
}

func (c colourInfo) write(w io.Writer) {
	name := c.Name
	if !c.Exact {
		name = "~" + name
	}
	fmt.Fprintln(w, colour.FormatColourWithPreview(c.RGB, 4))
	fmt.Fprintf(w, "  %-9s %s\n", "rgb", c.RGB)
	fmt.Fprintf(w, "  %-9s %s\n", "hsv", c.HSV)
	fmt.Fprintf(w, "  %-9s %s\n", "position", c.Position)
	fmt.Fprintf(w, "  %-9s %s\n", "center", c.Center)
	fmt.Fprintf(w, "  %-9s %s\n", "name", name)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func newConvertCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "convert <colour>",
		Short: "Show a colour as hex, RGB, HSV and wheel position",
		Long: `Convert a colour between representations.

The colour may be hex ("#3399FF", "39F") or an RGB triple ("51, 153, 255" or
"rgb(51, 153, 255)"). The output includes the wheel position, the centre mode
the picker would switch to, and the nearest named colour.

Examples:
  colormine convert "#3399FF"
  colormine convert "51,153,255" --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := colour.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid colour: %w", err)
			}
			info := describe(rgb)

			switch format {
			case "text":
				info.write(cmd.OutOrStdout())
				return nil
			case "json":
				return writeJSON(cmd.OutOrStdout(), info)
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	return cmd
}
