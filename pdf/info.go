package pdf

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// DocumentInfo summarizes a PDF document for display and for pre-flight
// checks before page operations.
type DocumentInfo struct {
	Path       string `json:"path"`
	FileSize   int64  `json:"file_size"`
	TotalPages int    `json:"total_pages"`
	Version    string `json:"version"`
	Encrypted  bool   `json:"encrypted"`
	Title      string `json:"title,omitempty"`
	Author     string `json:"author,omitempty"`
	Subject    string `json:"subject,omitempty"`
	Creator    string `json:"creator,omitempty"`
	Producer   string `json:"producer,omitempty"`
}

// Inspect opens the PDF at path and reports page count, version, encryption
// state and the Info dictionary fields.
func Inspect(path string) (*DocumentInfo, error) {
	doc, err := Open(path)
	if err != nil {
		// An encrypted document still yields an answer: that it is encrypted.
		if err == ErrEncrypted {
			return encryptedInfo(path)
		}
		return nil, err
	}
	defer doc.Close()

	info := &DocumentInfo{
		Path:       path,
		TotalPages: doc.PageCount(),
		Encrypted:  doc.Encrypted(),
	}

	if fi, err := os.Stat(path); err == nil {
		info.FileSize = fi.Size()
	}

	if doc.ctx.HeaderVersion != nil {
		info.Version = doc.ctx.HeaderVersion.String()
	}

	if doc.ctx.Info != nil {
		infoDict, err := doc.ctx.DereferenceDict(*doc.ctx.Info)
		if err != nil {
			return nil, fmt.Errorf("failed to read metadata: %w", err)
		}
		info.Title = infoString(doc, infoDict, "Title")
		info.Author = infoString(doc, infoDict, "Author")
		info.Subject = infoString(doc, infoDict, "Subject")
		info.Creator = infoString(doc, infoDict, "Creator")
		info.Producer = infoString(doc, infoDict, "Producer")
	}

	return info, nil
}

// encryptedInfo reports what little can be said about a document that
// cannot be opened without a password.
func encryptedInfo(path string) (*DocumentInfo, error) {
	info := &DocumentInfo{Path: path, Encrypted: true}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	info.FileSize = fi.Size()
	return info, nil
}

// infoString decodes a text entry of the Info dictionary. Missing or
// undecodable entries come back empty.
func infoString(doc *Document, dict types.Dict, key string) string {
	obj, found := dict.Find(key)
	if !found {
		return ""
	}
	obj, err := doc.ctx.Dereference(obj)
	if err != nil {
		return ""
	}
	switch s := obj.(type) {
	case types.StringLiteral:
		decoded, err := types.StringLiteralToString(s)
		if err != nil {
			return ""
		}
		return decoded
	case types.HexLiteral:
		decoded, err := types.HexLiteralToString(s)
		if err != nil {
			return ""
		}
		return decoded
	}
	return ""
}
