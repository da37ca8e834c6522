package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormine/internal/colour"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage recently used colours",
		Long: `Manage the list of recently used colours shared with the GUI.

The ten most recent colours are kept, newest first, without duplicates.`,
	}

	var format string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent colours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := a.openHistory()
			if err != nil {
				return err
			}
			entries := h.Entries()

			switch format {
			case "json":
				if entries == nil {
					entries = []string{}
				}
				return writeJSON(cmd.OutOrStdout(), entries)
			case "text":
				if len(entries) == 0 {
					a.printf(cmd, "No colours in history\n")
					return nil
				}
				table := NewTable([]string{"#", "Colour", "Name"})
				for i, hex := range entries {
					rgb, err := colour.ParseHex(hex)
					if err != nil {
						continue
					}
					name, _ := colour.NearestName(rgb)
					table.AddRow([]string{strconv.Itoa(i + 1), colour.FormatColourWithPreview(rgb, 2), name})
				}
				fmt.Fprint(cmd.OutOrStdout(), table.Render())
				return nil
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}
		},
	}
	listCmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")

	addCmd := &cobra.Command{
		Use:   "add <colour>...",
		Short: "Add colours to the history",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.openHistory()
			if err != nil {
				return err
			}
			for _, arg := range args {
				rgb, err := colour.Parse(arg)
				if err != nil {
					return fmt.Errorf("invalid colour: %w", err)
				}
				if err := h.Add(rgb.Hex()); err != nil {
					return err
				}
				a.printf(cmd, "Added %s\n", rgb.Hex())
			}
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all colours from the history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := a.openHistory()
			if err != nil {
				return err
			}
			if err := h.Clear(); err != nil {
				return err
			}
			a.printf(cmd, "History cleared\n")
			return nil
		},
	}

	cmd.AddCommand(listCmd, addCmd, clearCmd)
	return cmd
}
