package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"exifedit/editor"
)

var setModified bool

var dateCmd = &cobra.Command{
	Use:   "date IMAGE",
	Short: "Show the original and modification datetimes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed, err := newEditor(args[0])
		if err != nil {
			return err
		}
		original, originalOK, err := ed.OriginalDateTime(cmd.Context())
		if err != nil {
			return err
		}
		modified, modifiedOK, err := ed.ModificationDateTime(cmd.Context())
		if err != nil {
			return err
		}
		p := printer()
		p.PrintDate("DateTimeOriginal", original, originalOK)
		p.PrintDate("FileModifyDate", modified, modifiedOK)
		return nil
	},
}

var dateSetCmd = &cobra.Command{
	Use:   "set IMAGE [DATETIME]",
	Short: "Set the original datetime (or the modification datetime with --modified)",
	Long: `Set the image's original datetime, i.e. when the picture was taken.
DATETIME uses the EXIF format "YYYY:MM:DD HH:MM:SS"; a bare date means
midnight, and no value at all means now.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed, err := newEditor(args[0])
		if err != nil {
			return err
		}
		var t time.Time
		if len(args) == 2 {
			t, err = editor.ParseDateTime(args[1])
			if err != nil {
				return err
			}
		}
		if setModified {
			return ed.SetModificationDateTime(cmd.Context(), t)
		}
		return ed.SetOriginalDateTime(cmd.Context(), t)
	},
}

func init() {
	dateSetCmd.Flags().BoolVar(&setModified, "modified", false, "Set FileModifyDate instead of DateTimeOriginal")
	dateCmd.AddCommand(dateSetCmd)
	rootCmd.AddCommand(dateCmd)
}
