package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormine/internal/colour"
	imageloader "github.com/jmylchreest/colormine/internal/image"
	"github.com/jmylchreest/colormine/internal/wheel"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		output string
		scale  int
		marker pointValue
		hex    string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the colour wheel to a PNG",
		Long: `Render the HSV colour wheel to a PNG file.

Pixels outside the disc are transparent. With --marker (a position normalised
to the wheel radius) or --colour, the selection marker is drawn as well.

Examples:
  # Render a 300px white-centre wheel
  colormine render -o wheel.png

  # Render a black-centre wheel at 2x for sharp edges
  colormine render --center black --scale 2 --size 512 -o wheel.png

  # Mark a colour on the wheel
  colormine render --colour "#3399FF" -o wheel.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			size, err := a.sizeFlag(cmd.Flags())
			if err != nil {
				return err
			}
			if size < wheel.MinSize {
				return fmt.Errorf("size must be at least %d", wheel.MinSize)
			}
			if scale < 1 {
				return fmt.Errorf("scale must be at least 1")
			}

			mode := a.centerMode()
			var pos *colour.Position
			switch {
			case hex != "":
				rgb, err := colour.Parse(hex)
				if err != nil {
					return fmt.Errorf("invalid colour: %w", err)
				}
				hsv := colour.RGBToHSV(rgb)
				if !cmd.Flags().Changed("center") {
					mode = colour.ModeFor(hsv)
				}
				p := colour.PositionFromHSV(hsv)
				pos = &p
			case marker.set:
				pos = &colour.Position{X: marker.X, Y: marker.Y}
			}

			cache := wheel.NewCache(a.logger.Named("wheel"))
			img := cache.GetScaled(size, mode, scale)
			if pos != nil {
				img = cache.Compose(size, mode, scale, *pos)
			}

			if err := imageloader.SavePNG(output, img); err != nil {
				return err
			}
			a.logger.Debug("wheel written", "path", output, "rebuilds", cache.Rebuilds())
			a.printf(cmd, "Wrote %s (%dx%d, %s centre)\n", output, size, size, mode)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "wheel.png", "output PNG file")
	cmd.Flags().Int("size", 0, "wheel side in pixels (default from COLORMINE_SIZE or 300)")
	cmd.Flags().IntVar(&scale, "scale", 1, "device pixel ratio to render at before downsampling")
	cmd.Flags().Var(&marker, "marker", "draw the marker at a normalised position")
	cmd.Flags().StringVar(&hex, "colour", "", "draw the marker at this colour's position")
	cmd.MarkFlagsMutuallyExclusive("marker", "colour")

	return cmd
}
