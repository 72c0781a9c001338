package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"exifedit/editor"
	"exifedit/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse IMAGE",
	Short: "Browse an image's tags interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed, err := newEditor(args[0])
		if err != nil {
			return err
		}

		load := loadTags(cmd.Context(), ed)
		model := tui.NewModel(args[0], load)
		_, err = tea.NewProgram(model).Run()
		return err
	},
}

func loadTags(ctx context.Context, ed *editor.Editor) tea.Cmd {
	return func() tea.Msg {
		entries, err := ed.Tags(ctx, true)
		if err != nil {
			return tui.ErrorMsg{Err: err}
		}
		return tui.TagsLoadedMsg{Entries: entries}
	}
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
