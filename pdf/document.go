package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Document is an open, in-memory PDF handle backed by a pdfcpu context.
// One document is opened per operation; a Document is not safe for
// concurrent use.
type Document struct {
	ctx  *model.Context
	file *os.File
	path string
}

// Open reads and validates the PDF at path. Password-protected documents
// are rejected with ErrEncrypted.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		f.Close()
		// pdfcpu reports a missing/wrong password while setting up decryption.
		// Without password support that simply means "encrypted".
		if strings.Contains(strings.ToLower(err.Error()), "password") {
			return nil, ErrEncrypted
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return &Document{ctx: ctx, file: f, path: path}, nil
}

// Close releases the underlying file.
func (d *Document) Close() error {
	return d.file.Close()
}

// Path returns the path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// Encrypted reports whether the document carries an encryption dictionary.
// Documents encrypted with an empty user password open fine but are still
// rejected by Extract.
func (d *Document) Encrypted() bool {
	return d.ctx.Encrypt != nil
}
