// Package cmd implements the CLI commands for pdf_extractor using Cobra.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the root command for pdf_extractor.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pdf_extractor",
		Short:        "pdf_extractor copies selected pages out of PDF documents",
		Long:         "pdf_extractor extracts a subset of pages from a PDF into a new file,\neither from the command line or through an HTTP service.",
		SilenceUsage: true,
	}
	cmd.AddCommand(newExtractCommand())
	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newVersionCommand())
	return cmd
}

// Run runs the root command.
func Run() error {
	return NewCommand().Execute()
}
