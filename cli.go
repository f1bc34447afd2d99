package bulkfm

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type cliFlags struct {
	ConfigFile string
	Editor     string
	FilesFrom  string
	Stealth    bool
	NoTrash    bool
	Completion string
}

var flags = &cliFlags{}

// statusError carries a nonzero operation status through cobra so main
// can turn it into the process exit code. The diagnostics were already
// printed by the flow.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

var rootCmd = &cobra.Command{
	Use:   "bulkfm",
	Short: "Rename or remove files in bulk through your text editor.",
	Long: `bulkfm materializes a set of files into an editable document, hands it
to your editor, diffs the result, and applies the edits as renames or
removals after confirmation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flags.Completion != "" {
			return handleCompletion(cmd)
		}
		return cmd.Help()
	},
}

var renameCmd = &cobra.Command{
	Use:     "rename [files...]",
	Aliases: []string{"br"},
	Short:   "Rename the given files in bulk via the editor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppFromFlags()
		if err != nil {
			return err
		}

		if len(args) == 0 && flags.FilesFrom != "" {
			args, err = NewSourceProvider().FileList(flags.FilesFrom)
			if err != nil {
				return err
			}
		}

		if status := app.BulkRename(append([]string{"br"}, args...)); status != 0 {
			return &statusError{code: status}
		}
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:     "remove [dir] [editor]",
	Aliases: []string{"rr"},
	Short:   "Remove files from a directory in bulk via the editor.",
	Args:    cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppFromFlags()
		if err != nil {
			return err
		}

		var s1, s2 string
		if len(args) > 0 {
			s1 = args[0]
		}
		if len(args) > 1 {
			s2 = args[1]
		}

		if status := app.BulkRemove(s1, s2); status != 0 {
			return &statusError{code: status}
		}
		return nil
	},
}

func newAppFromFlags() (*App, error) {
	var cfg *Config
	var err error
	if flags.ConfigFile != "" {
		cfg, err = LoadFrom(flags.ConfigFile)
	} else {
		cfg, err = Load()
	}
	if err != nil {
		return nil, err
	}

	if flags.Editor != "" {
		cfg.Editor = flags.Editor
	}
	if flags.Stealth {
		cfg.StealthMode = true
	}
	if flags.NoTrash {
		cfg.UseTrash = false
	}

	return NewApp(cfg)
}

func handleCompletion(cmd *cobra.Command) error {
	switch flags.Completion {
	case "bash":
		return cmd.Root().GenBashCompletion(os.Stdout)
	case "zsh":
		return cmd.Root().GenZshCompletion(os.Stdout)
	case "fish":
		return cmd.Root().GenFishCompletion(os.Stdout, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
	default:
		return fmt.Errorf("unsupported shell for completion: %s", flags.Completion)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVarP(&flags.Editor, "editor", "e", "", "Editor to open the document with")
	rootCmd.PersistentFlags().BoolVar(&flags.Stealth, "stealth", false, "Use the system temp dir for the document")
	rootCmd.PersistentFlags().BoolVar(&flags.NoTrash, "no-trash", false, "Unlink removed files instead of trashing them")
	rootCmd.Flags().StringVar(&flags.Completion, "completion", "", "Generate completion script")

	renameCmd.Flags().StringVarP(&flags.FilesFrom, "files-from", "F", "", "Read the file list from 'stdin' or 'clipboard'")

	rootCmd.AddCommand(renameCmd, removeCmd, docsCmd)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var se *statusError
		if errors.As(err, &se) {
			return se.code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}
	return 0
}
