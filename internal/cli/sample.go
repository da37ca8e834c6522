package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	imageloader "github.com/jmylchreest/colormine/internal/image"
	"github.com/jmylchreest/colormine/internal/picker"
	"github.com/jmylchreest/colormine/internal/sampler"
)

func newSampleCmd(a *app) *cobra.Command {
	var (
		imagePath string
		at        pointValue
		tool      string
		noHistory bool
		format    string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Pick a colour from the screen or an image",
		Long: `Pick a colour from the screen using an installed picker tool
(hyprpicker, xcolor or gpick), or read a pixel from an image file.

The picked colour is added to the history unless --no-history is set.
Dismissing the screen picker is not an error; nothing is printed.

Examples:
  colormine sample
  colormine sample --tool xcolor
  colormine sample --image wallpaper.png --at 120,40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var s sampler.Sampler
			switch {
			case imagePath != "":
				if !at.set {
					return errors.New("--at is required with --image")
				}
				if !imageloader.IsImageFile(imagePath) {
					return fmt.Errorf("unsupported image type %q (supported: %s)",
						filepath.Ext(imagePath), strings.Join(imageloader.SupportedImageExtensions(), ", "))
				}
				s = sampler.ImagePoint{Path: imagePath, X: int(at.X), Y: int(at.Y)}
			default:
				screen := sampler.NewScreen(a.logger.Named("sampler"))
				screen.Tool = a.config.Sampler
				if tool != "" {
					screen.Tool = tool
				}
				s = screen
			}

			opts := picker.Options{
				Sampler: s,
				Logger:  a.logger.Named("picker"),
				Mode:    a.centerMode(),
				Notify: func(msg string) {
					a.logger.Warn(msg)
				},
			}
			if !noHistory {
				h, err := a.openHistory()
				if err != nil {
					return err
				}
				opts.History = h
			}

			c := picker.New(opts)
			picked := false
			c.OnChange(func(picker.State) { picked = true })

			if err := c.PickFromScreen(cmd.Context()); err != nil {
				if errors.Is(err, sampler.ErrUnsupported) {
					return fmt.Errorf("%w: install hyprpicker, xcolor or gpick", err)
				}
				return err
			}
			if !picked {
				a.logger.Debug("nothing picked")
				return nil
			}

			info := describe(c.State().RGB())
			switch format {
			case "json":
				return writeJSON(cmd.OutOrStdout(), info)
			case "hex":
				fmt.Fprintln(cmd.OutOrStdout(), info.Hex)
				return nil
			default:
				info.write(cmd.OutOrStdout())
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "sample from an image file instead of the screen")
	cmd.Flags().Var(&at, "at", "pixel to sample from --image")
	cmd.Flags().StringVar(&tool, "tool", "", "screen picker tool to use (default from COLORMINE_SAMPLER or auto)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record the colour in the history")
	cmd.Flags().StringVarP(&format, "format", "f", "hex", "output format (hex, text, json)")
	return cmd
}
