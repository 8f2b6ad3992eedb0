package pdf

import (
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// RemovePagesFromPDF removes the pages named by a page spec string from
// inFile and writes the remainder to outFile.
func RemovePagesFromPDF(inFile, outFile, pages string) error {
	totalPages, err := api.PageCountFile(inFile)
	if err != nil {
		return fmt.Errorf("failed to get page count: %w", err)
	}

	pageNumbers, err := ParsePageSpec(pages, totalPages)
	if err != nil {
		return err
	}
	if len(pageNumbers) == 0 {
		return fmt.Errorf("page spec %q selects no pages", pages)
	}
	if len(pageNumbers) == totalPages {
		return fmt.Errorf("removing all %d pages would leave an empty document", totalPages)
	}

	selected := make([]string, len(pageNumbers))
	for i, p := range pageNumbers {
		selected[i] = strconv.Itoa(p)
	}

	conf := model.NewDefaultConfiguration()
	if err := api.RemovePagesFile(inFile, outFile, selected, conf); err != nil {
		return fmt.Errorf("failed to remove pages: %w", err)
	}

	return nil
}
