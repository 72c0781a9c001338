package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"exifedit/editor"
	"exifedit/exiftool"
	"exifedit/internal/config"
	apperrors "exifedit/internal/errors"
	"exifedit/internal/logging"
	"exifedit/internal/presentation"
)

var (
	toolPath string
	backup   bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "exifedit",
	Short: "Read and write image metadata through exiftool",
	Long: `exifedit reads and writes EXIF/IPTC tags on image files by driving
the exiftool command-line program. exiftool must be installed separately.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return apperrors.Wrap(apperrors.InvalidConfig, "config", "", err)
		}
		// Flags win over environment.
		if !cmd.Flags().Changed("tool") && cfg.ToolPath != "" {
			toolPath = cfg.ToolPath
		}
		if !cmd.Flags().Changed("backup") {
			backup = cfg.Backup
		}
		if !cmd.Flags().Changed("verbose") {
			verbose = cfg.Verbose
		}
		logging.Setup(verbose)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, apperrors.UserMessage(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&toolPath, "tool", "", "Path to the exiftool binary (default: resolved on PATH)")
	rootCmd.PersistentFlags().BoolVar(&backup, "backup", false, "Keep exiftool's _original backup next to edited images")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

func newRunner() (*exiftool.Runner, error) {
	if toolPath != "" {
		return exiftool.NewWithPath(toolPath)
	}
	return exiftool.New()
}

func newEditor(image string) (*editor.Editor, error) {
	runner, err := newRunner()
	if err != nil {
		return nil, err
	}
	opts := []editor.Option{editor.WithInvoker(runner)}
	if backup {
		opts = append(opts, editor.WithBackup())
	}
	return editor.New(image, opts...)
}

func printer() presentation.Printer {
	return presentation.Printer{Writer: os.Stdout}
}
