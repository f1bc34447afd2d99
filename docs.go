package bulkfm

import (
	"embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

//go:embed docs
var docsFS embed.FS

var docsCmd = &cobra.Command{
	Use:       "docs [topic]",
	Short:     "Show the bundled manual (topics: rename, remove).",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"rename", "remove"},
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := "rename"
		if len(args) > 0 {
			topic = args[0]
		}

		data, err := docsFS.ReadFile("docs/" + topic + ".md")
		if err != nil {
			return fmt.Errorf("no manual for topic %q", topic)
		}

		if !isatty.IsTerminal(os.Stdout.Fd()) {
			fmt.Print(string(data))
			return nil
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return err
		}
		out, err := r.Render(string(data))
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}
