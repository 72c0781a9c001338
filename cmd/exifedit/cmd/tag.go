package cmd

import (
	"github.com/spf13/cobra"
)

var includeEmpty bool

var tagsCmd = &cobra.Command{
	Use:   "tags IMAGE",
	Short: "List every tag on an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed, err := newEditor(args[0])
		if err != nil {
			return err
		}
		entries, err := ed.Tags(cmd.Context(), includeEmpty)
		if err != nil {
			return err
		}
		printer().PrintTags(entries)
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get IMAGE TAG",
	Short: "Print a single tag value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed, err := newEditor(args[0])
		if err != nil {
			return err
		}
		value, ok, err := ed.TagString(cmd.Context(), args[1])
		if err != nil {
			return err
		}
		printer().PrintTag(args[1], value, ok)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set IMAGE TAG VALUE [VALUE...]",
	Short: "Set a tag to one or more values",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed, err := newEditor(args[0])
		if err != nil {
			return err
		}
		return ed.SetTag(cmd.Context(), args[1], args[2:]...)
	},
}

func init() {
	tagsCmd.Flags().BoolVar(&includeEmpty, "include-empty", true, "Include tags with empty values")
	rootCmd.AddCommand(tagsCmd, getCmd, setCmd)
}
