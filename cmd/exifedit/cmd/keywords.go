package cmd

import (
	"github.com/spf13/cobra"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords IMAGE",
	Short: "List or edit an image's keywords",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed, err := newEditor(args[0])
		if err != nil {
			return err
		}
		keywords, err := ed.Keywords(cmd.Context())
		if err != nil {
			return err
		}
		printer().PrintKeywords(keywords)
		return nil
	},
}

var keywordsAddCmd = &cobra.Command{
	Use:   "add IMAGE KEYWORD [KEYWORD...]",
	Short: "Add keywords, preserving existing ones",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed, err := newEditor(args[0])
		if err != nil {
			return err
		}
		return ed.AddKeywords(cmd.Context(), args[1:])
	},
}

var keywordsRemoveCmd = &cobra.Command{
	Use:   "remove IMAGE KEYWORD [KEYWORD...]",
	Short: "Remove keywords; missing ones are ignored",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed, err := newEditor(args[0])
		if err != nil {
			return err
		}
		return ed.RemoveKeywords(cmd.Context(), args[1:])
	},
}

var keywordsSetCmd = &cobra.Command{
	Use:   "set IMAGE [KEYWORD...]",
	Short: "Replace the keyword list entirely",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed, err := newEditor(args[0])
		if err != nil {
			return err
		}
		return ed.SetKeywords(cmd.Context(), args[1:])
	},
}

var keywordsClearCmd = &cobra.Command{
	Use:   "clear IMAGE",
	Short: "Remove all keywords",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed, err := newEditor(args[0])
		if err != nil {
			return err
		}
		return ed.ClearKeywords(cmd.Context())
	},
}

func init() {
	keywordsCmd.AddCommand(keywordsAddCmd, keywordsRemoveCmd, keywordsSetCmd, keywordsClearCmd)
	rootCmd.AddCommand(keywordsCmd)
}
