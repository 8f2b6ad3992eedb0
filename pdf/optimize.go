package pdf

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Optimize rewrites a PDF file with pdfcpu's optimizer, pruning unused
// objects and compressing streams.
func Optimize(inFile, outFile string) error {
	conf := model.NewDefaultConfiguration()
	if err := api.OptimizeFile(inFile, outFile, conf); err != nil {
		return fmt.Errorf("failed to optimize %s: %w", inFile, err)
	}
	return nil
}
