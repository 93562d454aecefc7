// Package cli implements the detect-requirements command-line interface.
package cli

import (
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	reqio "github.com/matzehuels/reqdetect/pkg/io"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the command name used for usage and version output.
	appName = "detect-requirements"

	// formatTable renders a styled table for terminals.
	formatTable = "table"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// outputFormats lists every value accepted by --format.
var outputFormats = append(slices.Clone(reqio.Formats), formatTable)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the detect-requirements command.
func (c *CLI) RootCommand() *cobra.Command {
	var opts detectOptions

	root := &cobra.Command{
		Use:   appName + " [path]",
		Short: "Detect the requirements of a Python project",
		Long: `detect-requirements finds the dependencies a Python project declares without
installing or executing anything.

It reads, in order: setup.py (install_requires), pyproject.toml (Poetry or
PEP 621 dependencies), requirements.txt / requirements.pip, every list file in
a requirements/ directory, and loosely named files such as dev_reqs.txt.
Path defaults to the current directory.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateFormat(opts.format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			return runDetect(withLogger(cmd.Context(), c.Logger), cmd.OutOrStdout(), path, opts)
		},
	}

	root.SetVersionTemplate(versionTemplate())
	root.Flags().StringVarP(&opts.format, "format", "f", reqio.FormatRequirementsFile,
		"output format: "+strings.Join(outputFormats, ", "))
	root.Flags().StringVarP(&opts.output, "output", "o", "", "write output to a file instead of stdout")

	return root
}
