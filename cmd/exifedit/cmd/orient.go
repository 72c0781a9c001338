package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rotateSteps int

var rotateCmd = &cobra.Command{
	Use:   "rotate IMAGE (cw|ccw)",
	Short: "Rotate an image in 90 degree steps via its orientation tag",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed, err := newEditor(args[0])
		if err != nil {
			return err
		}
		switch args[1] {
		case "cw":
			return ed.RotateCW(cmd.Context(), rotateSteps)
		case "ccw":
			return ed.RotateCCW(cmd.Context(), rotateSteps)
		default:
			return fmt.Errorf("direction must be cw or ccw, got %q", args[1])
		}
	},
}

var mirrorCmd = &cobra.Command{
	Use:   "mirror IMAGE (horizontal|vertical)",
	Short: "Mirror an image via its orientation tag",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed, err := newEditor(args[0])
		if err != nil {
			return err
		}
		switch args[1] {
		case "horizontal", "h":
			return ed.MirrorHorizontally(cmd.Context())
		case "vertical", "v":
			return ed.MirrorVertically(cmd.Context())
		default:
			return fmt.Errorf("direction must be horizontal or vertical, got %q", args[1])
		}
	},
}

func init() {
	rotateCmd.Flags().IntVarP(&rotateSteps, "num", "n", 1, "Number of 90 degree steps")
	rootCmd.AddCommand(rotateCmd, mirrorCmd)
}
