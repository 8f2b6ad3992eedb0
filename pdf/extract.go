package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Extract copies the given 1-indexed pages from doc into a new PDF at
// outPath. Page numbers are taken in the order given; validation against
// the document's page count happens upstream (see ParsePageSpec). With
// copyMetadata set, the source Info dictionary is carried over verbatim.
// Intermediate output directories are created as needed.
func Extract(doc *Document, outPath string, pageNumbers []int, copyMetadata bool) error {
	if doc.Encrypted() {
		return ErrEncrypted
	}

	outCtx, err := pdfcpu.ExtractPages(doc.ctx, pageNumbers, false)
	if err != nil {
		return fmt.Errorf("failed to extract pages: %w", err)
	}

	if copyMetadata && doc.ctx.Info != nil {
		infoDict, err := doc.ctx.DereferenceDict(*doc.ctx.Info)
		if err != nil {
			return fmt.Errorf("failed to read source metadata: %w", err)
		}
		ir, err := outCtx.IndRefForNewObject(infoDict.Clone().(types.Dict))
		if err != nil {
			return fmt.Errorf("failed to copy metadata: %w", err)
		}
		outCtx.Info = ir
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := api.WriteContextFile(outCtx, outPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	return nil
}

// ExtractFile extracts the pages named by a page spec string from inFile
// into outFile. The spec is validated against the document's page count
// before any output is produced.
func ExtractFile(inFile, outFile, pages string, copyMetadata bool) error {
	doc, err := Open(inFile)
	if err != nil {
		return err
	}
	defer doc.Close()

	if doc.Encrypted() {
		return ErrEncrypted
	}

	pageNumbers, err := ParsePageSpec(pages, doc.PageCount())
	if err != nil {
		return err
	}
	if len(pageNumbers) == 0 {
		return fmt.Errorf("page spec %q selects no pages", pages)
	}

	return Extract(doc, outFile, pageNumbers, copyMetadata)
}
