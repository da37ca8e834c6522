package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormine/internal/ui"
)

func newGUICmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Open the interactive colour wheel",
		Long: `Open the interactive colour wheel window.

Drag on the wheel, type hex or RGB values, or use the channel sliders; all of
them stay in sync. Recent colours are remembered between sessions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			size, err := a.sizeFlag(cmd.Flags())
			if err != nil {
				return err
			}
			cfg := a.config
			cfg.Size = size
			return ui.Run(cfg, a.logger)
		},
	}
	cmd.Flags().Int("size", 0, "initial wheel side in pixels")
	return cmd
}
