package api

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	pdfPkg "pdf_extractor/pdf"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func HandleUpload(c *gin.Context, config *Config) {
	file, header, err := c.Request.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	// Validate PDF file
	if err := validatePDFFile(file, header, config.MaxFileSize); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Save the uploaded file temporarily
	if err := ensureTempDir(config.TempDir); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create temp directory"})
		return
	}

	// Sanitize filename to prevent path traversal
	safeFilename := sanitizeFilename(header.Filename)
	uniqueID := generateUniqueID()
	filename := filepath.Join(config.TempDir, uniqueID+"_"+safeFilename)

	out, err := os.Create(filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}
	defer out.Close()

	_, err = out.ReadFrom(file)
	if err != nil {
		os.Remove(filename) // Clean up on error
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"filename": header.Filename, "path": filename})
}

func HandleExtractPages(c *gin.Context, config *Config) {
	pagesParam := c.PostForm("pages")
	if pagesParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No pages specified"})
		return
	}
	copyMetadata := c.PostForm("copy_metadata") == "true"

	handlePDFFile(c, config, func(inFile, outFile string) error {
		return pdfPkg.ExtractFile(inFile, outFile, pagesParam, copyMetadata)
	}, "pages")
}

func HandleRemovePages(c *gin.Context, config *Config) {
	pagesParam := c.PostForm("pages")
	if pagesParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No pages specified"})
		return
	}

	handlePDFFile(c, config, func(inFile, outFile string) error {
		return pdfPkg.RemovePagesFromPDF(inFile, outFile, pagesParam)
	}, "pages_removed")
}

func HandleOptimize(c *gin.Context, config *Config) {
	handlePDFFile(c, config, pdfPkg.Optimize, "optimized")
}

func HandleInfo(c *gin.Context, config *Config) {
	file, header, err := c.Request.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No PDF file provided"})
		return
	}
	defer file.Close()

	// Validate PDF file
	if err := validatePDFFile(file, header, config.MaxFileSize); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Create temp input file
	if err := ensureTempDir(config.TempDir); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create temp directory"})
		return
	}

	uniqueID := generateUniqueID()
	inFile := filepath.Join(config.TempDir, "info_"+uniqueID+".pdf")

	out, err := os.Create(inFile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create temp file"})
		return
	}

	_, err = out.ReadFrom(file)
	out.Close()
	if err != nil {
		os.Remove(inFile) // Clean up on error
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save input file"})
		return
	}

	info, err := pdfPkg.Inspect(inFile)
	if err != nil {
		go func() {
			time.Sleep(AnalysisCleanupDelay)
			os.Remove(inFile)
		}()
		logrus.Errorf("PDF inspection error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to inspect PDF"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filename":    header.Filename,
		"total_pages": info.TotalPages,
		"version":     info.Version,
		"encrypted":   info.Encrypted,
		"file_size":   info.FileSize,
		"title":       info.Title,
		"author":      info.Author,
		"subject":     info.Subject,
		"creator":     info.Creator,
		"producer":    info.Producer,
	})

	// Clean up temp file after response is sent
	defer func() {
		go func() {
			time.Sleep(AnalysisCleanupDelay)
			os.Remove(inFile)
		}()
	}()
}

func handlePDFFile(c *gin.Context, config *Config, operation func(string, string) error, suffix string) {
	file, header, err := c.Request.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No PDF file provided"})
		return
	}
	defer file.Close()

	// Validate PDF file
	if err := validatePDFFile(file, header, config.MaxFileSize); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Create temp input file
	if err := ensureTempDir(config.TempDir); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create temp directory"})
		return
	}

	uniqueID := generateUniqueID()
	inFile := filepath.Join(config.TempDir, "input_"+uniqueID+".pdf")
	outFile := filepath.Join(config.TempDir, "output_"+uniqueID+"_"+suffix+".pdf")

	out, err := os.Create(inFile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create temp file"})
		return
	}

	_, err = out.ReadFrom(file)
	out.Close()
	if err != nil {
		os.Remove(inFile) // Clean up on error
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save input file"})
		return
	}

	// Perform operation
	err = operation(inFile, outFile)
	if err != nil {
		os.Remove(inFile) // Clean up input file on error
		if _, statErr := os.Stat(outFile); statErr == nil {
			os.Remove(outFile) // Clean up output file if it exists
		}
		logrus.Errorf("PDF operation error: %v", err)
		// Encrypted input is a user error, not a server fault
		status := http.StatusInternalServerError
		if errors.Is(err, pdfPkg.ErrEncrypted) {
			status = http.StatusBadRequest
		}
		errorMsg := "PDF operation failed"
		if errStr := err.Error(); errStr != "" {
			// Truncate long error messages but include key info
			if len(errStr) > 200 {
				errorMsg = errStr[:200] + "..."
			} else {
				errorMsg = errStr
			}
		}
		c.JSON(status, gin.H{"error": errorMsg})
		return
	}

	// Verify output file exists before sending
	if _, err := os.Stat(outFile); os.IsNotExist(err) {
		os.Remove(inFile)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "PDF operation did not produce output file"})
		return
	}

	// Set headers for file download
	c.Header("Content-Type", "application/pdf")

	// Get original filename from form if available, otherwise use default
	filename := "document_" + suffix + ".pdf"
	if header != nil {
		originalName := header.Filename
		// Remove .pdf extension if present, add suffix
		if strings.HasSuffix(strings.ToLower(originalName), ".pdf") {
			filename = originalName[:len(originalName)-4] + "_" + suffix + ".pdf"
		} else {
			filename = originalName + "_" + suffix + ".pdf"
		}
		filename = sanitizeFilename(filename)
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	// Return the processed file for download
	c.File(outFile)

	// Clean up temp files after response is sent to avoid race conditions
	defer func() {
		go func() {
			// Wait a bit to ensure file transfer completes
			time.Sleep(FileCleanupDelay)
			os.Remove(inFile)
			os.Remove(outFile)
		}()
	}()
}

// ensureTempDir creates the temp directory if it doesn't exist
func ensureTempDir(tempDir string) error {
	return os.MkdirAll(tempDir, DefaultFilePermissions)
}

// sanitizeFilename removes path traversal attempts and dangerous characters
func sanitizeFilename(filename string) string {
	// Remove directory separators and path traversal attempts
	filename = strings.ReplaceAll(filename, "..", "")
	filename = strings.ReplaceAll(filename, "/", "_")
	filename = strings.ReplaceAll(filename, "\\", "_")

	// Get just the base filename to prevent path issues
	filename = filepath.Base(filename)

	// Remove any remaining dangerous characters
	filename = strings.TrimSpace(filename)

	// If empty after sanitization, use default
	if filename == "" {
		filename = "document.pdf"
	}

	return filename
}

// generateUniqueID generates a unique identifier for temp files
func generateUniqueID() string {
	// Use timestamp + random bytes for uniqueness
	b := make([]byte, 8)
	rand.Read(b)
	timestamp := time.Now().UnixNano()
	return fmt.Sprintf("%d_%s", timestamp, hex.EncodeToString(b))
}

// validatePDFFile checks if the file is a valid PDF by reading the header
func validatePDFFile(file multipart.File, header *multipart.FileHeader, maxSize int64) error {
	if header.Size > maxSize {
		return fmt.Errorf("file size %d exceeds maximum allowed %d bytes", header.Size, maxSize)
	}

	// Read first 4 bytes to check PDF header
	buffer := make([]byte, 4)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file header: %v", err)
	}

	if n >= 4 && string(buffer[:4]) != "%PDF" {
		return fmt.Errorf("invalid PDF file: header does not match")
	}

	// Seek back to beginning for subsequent reads
	_, err = file.Seek(0, 0)
	if err != nil {
		return fmt.Errorf("failed to reset file position: %v", err)
	}

	return nil
}
