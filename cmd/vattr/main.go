// Command vattr renders, diffs, publishes and serves the demo application.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vattr/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configDir string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "vattr",
		Short: "Render and serve virtual DOM trees",
		Long: `vattr renders virtual DOM trees built from typed attributes.

Attributes are static values, DOM property calls or event callbacks.
Only static values become HTML; properties and listeners are applied by
the live client over a websocket.

Commands work on a bundled todo application so every stage can be
inspected: the rendered HTML, the patches between two states, and the
live session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configDir, "config", "c", ".", "Directory containing vattr.json")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (default from vattr.json)")

	rootCmd.AddCommand(
		renderCmd(flags),
		diffCmd(flags),
		serveCmd(flags),
		versionCmd(),
	)
	return rootCmd
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
