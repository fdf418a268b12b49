// Package inspect summarizes documents without converting them.
package inspect

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/docmd/docmd/internal/models"
)

// Inspect returns size, hash, and format-specific metadata for a document.
// PDF metadata comes from the trailer Info dictionary; DOCX gets size and
// hash only.
func Inspect(data []byte, ext string) (models.DocumentInfo, error) {
	hash := sha256.Sum256(data)
	info := models.DocumentInfo{
		FileSize: int64(len(data)),
		Hash:     hex.EncodeToString(hash[:]),
	}

	switch strings.ToLower(ext) {
	case ".pdf":
		info.FileType = models.PDF
		if err := fillPDFInfo(data, &info); err != nil {
			return models.DocumentInfo{}, err
		}
	case ".docx":
		info.FileType = models.Docx
	default:
		return models.DocumentInfo{}, fmt.Errorf("inspect: unsupported extension %q", ext)
	}
	return info, nil
}

func fillPDFInfo(data []byte, info *models.DocumentInfo) error {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, reader.Size())
	if err != nil {
		return fmt.Errorf("open pdf: %w", err)
	}
	info.Pages = pdfReader.NumPage()

	trailer := pdfReader.Trailer()
	if trailer.IsNull() {
		return nil
	}
	meta := trailer.Key("Info")
	if meta.IsNull() {
		return nil
	}
	if title := meta.Key("Title"); !title.IsNull() {
		info.Title = title.Text()
	}
	if author := meta.Key("Author"); !author.IsNull() {
		info.Author = author.Text()
	}
	return nil
}
