package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pdf_extractor/api"
	pdfPkg "pdf_extractor/pdf"

	"github.com/spf13/cobra"
)

func newExtractCommand() *cobra.Command {
	var (
		input        string
		pages        string
		output       string
		copyMetadata bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract pages from a PDF into a new file",
		Long: `Extract copies the pages named by a page specification (e.g. "1-3,5,7-9")
from a PDF document into a new file. The input is resolved either as an
absolute path or relative to the input directory; the result is written
to the output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := api.LoadConfig()
			return runExtract(config, input, pages, output, copyMetadata, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "input PDF, absolute or relative to the input directory (required)")
	cmd.Flags().StringVar(&pages, "pages", "", `page specification, e.g. "1-3,5,7-9" (required)`)
	cmd.Flags().StringVar(&output, "output", "", "output filename (default <input-stem>"+pdfPkg.OutputSuffix+".pdf)")
	cmd.Flags().BoolVar(&copyMetadata, "copy-metadata", false, "copy the source document metadata into the output")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("pages")

	return cmd
}

func runExtract(config *api.Config, input, pages, output string, copyMetadata bool, w io.Writer) error {
	if !strings.HasSuffix(strings.ToLower(input), pdfPkg.Extension) {
		return fmt.Errorf("input file must have a %s extension: %s", pdfPkg.Extension, input)
	}

	fullPath, err := resolveInputPath(input, config.InputDir)
	if err != nil {
		return err
	}

	doc, err := pdfPkg.Open(fullPath)
	if err != nil {
		return err
	}
	defer doc.Close()

	if doc.Encrypted() {
		return pdfPkg.ErrEncrypted
	}

	pageNumbers, err := pdfPkg.ParsePageSpec(pages, doc.PageCount())
	if err != nil {
		return err
	}
	if len(pageNumbers) == 0 {
		return fmt.Errorf("page spec %q selects no pages", pages)
	}

	outName := output
	if outName == "" {
		outName = defaultOutputName(input)
	}
	outPath := filepath.Join(config.OutputDir, outName)

	if err := pdfPkg.Extract(doc, outPath, pageNumbers, copyMetadata); err != nil {
		return err
	}

	fmt.Fprintf(w, "Created file: %s\n", outPath)
	return nil
}

// resolveInputPath locates the input document: an absolute path is used as
// given, anything else is looked up under the conventional input directory.
func resolveInputPath(input, inputDir string) (string, error) {
	if filepath.IsAbs(input) {
		if isRegularFile(input) {
			return input, nil
		}
		return "", fmt.Errorf("file not found: %s", input)
	}

	candidate := filepath.Join(inputDir, input)
	if isRegularFile(candidate) {
		return candidate, nil
	}
	return "", fmt.Errorf("file not found: %s", candidate)
}

// defaultOutputName derives the output filename from the input stem.
func defaultOutputName(input string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + pdfPkg.OutputSuffix + pdfPkg.Extension
}

func isRegularFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
