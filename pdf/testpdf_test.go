package pdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// writeTestPDF assembles a minimal n-page PDF by hand so tests do not
// depend on fixture files.
func writeTestPDF(t *testing.T, path string, pages int) {
	t.Helper()
	writeTestPDFWithInfo(t, path, pages, "", "")
}

// writeTestPDFWithInfo additionally attaches an Info dictionary when a
// title or author is given.
func writeTestPDFWithInfo(t *testing.T, path string, pages int, title, author string) {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	var offsets []int // offsets[i] holds the byte offset of object i+1
	writeObj := func(num int, body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	// Objects: 1 catalog, 2 page tree, 3 font, then a page and a content
	// stream per page, optionally an info dict at the end.
	kids := make([]string, pages)
	for i := 0; i < pages; i++ {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	writeObj(1, "<</Type/Catalog/Pages 2 0 R>>")
	writeObj(2, fmt.Sprintf("<</Type/Pages/Kids[%s]/Count %d>>", strings.Join(kids, " "), pages))
	writeObj(3, "<</Type/Font/Subtype/Type1/BaseFont/Helvetica>>")

	for i := 0; i < pages; i++ {
		pageObj := 4 + 2*i
		contObj := pageObj + 1
		writeObj(pageObj, fmt.Sprintf(
			"<</Type/Page/Parent 2 0 R/MediaBox[0 0 612 792]/Resources<</Font<</F1 3 0 R>>>>/Contents %d 0 R>>",
			contObj))
		stream := fmt.Sprintf("BT /F1 18 Tf 72 720 Td (Page %d) Tj ET", i+1)
		writeObj(contObj, fmt.Sprintf("<</Length %d>>\nstream\n%s\nendstream", len(stream), stream))
	}

	objCount := 3 + 2*pages
	infoRef := ""
	if title != "" || author != "" {
		objCount++
		writeObj(objCount, fmt.Sprintf("<</Title(%s)/Author(%s)/Producer(testpdf)>>", title, author))
		infoRef = fmt.Sprintf("/Info %d 0 R", objCount)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", objCount+1)
	fmt.Fprintf(&buf, "%010d %05d f\r\n", 0, 65535)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d %05d n\r\n", off, 0)
	}
	fmt.Fprintf(&buf, "trailer\n<</Size %d/Root 1 0 R%s>>\nstartxref\n%d\n%%%%EOF\n",
		objCount+1, infoRef, xrefOffset)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create fixture dir: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
}

// encryptTestPDF produces a password-protected copy of a fixture.
func encryptTestPDF(t *testing.T, inPath, outPath string) {
	t.Helper()
	conf := model.NewDefaultConfiguration()
	conf.UserPW = "secret"
	conf.OwnerPW = "secret"
	if err := api.EncryptFile(inPath, outPath, conf); err != nil {
		t.Fatalf("failed to encrypt fixture: %v", err)
	}
}

// pageCount reads a written PDF back and reports its page count.
func pageCount(t *testing.T, path string) int {
	t.Helper()
	n, err := api.PageCountFile(path)
	if err != nil {
		t.Fatalf("failed to count pages of %s: %v", path, err)
	}
	return n
}
