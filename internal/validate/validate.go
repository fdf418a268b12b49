// Package validate performs pre-flight checks on conversion inputs. The
// checks are advisory CLI plumbing: the converter itself accepts any bytes
// and lets the extraction engines reject what they cannot parse.
package validate

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/docmd/docmd/pkg/logger"
)

// Config controls validation limits.
type Config struct {
	MaxFileSize  int64
	AllowedTypes map[string][]string // extension -> acceptable sniffed MIME types
}

// DefaultConfig covers the extensions the converter dispatches on. DOCX is
// a zip container, so content sniffing reports application/zip.
func DefaultConfig() *Config {
	return &Config{
		MaxFileSize: 50 * 1024 * 1024, // 50MB
		AllowedTypes: map[string][]string{
			".pdf":  {"application/pdf"},
			".docx": {"application/zip", "application/octet-stream"},
		},
	}
}

// ValidationError is a single coded finding.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// FileInfo describes the inspected input.
type FileInfo struct {
	Filename  string `json:"filename"`
	Size      int64  `json:"size"`
	MimeType  string `json:"mimeType"`
	Extension string `json:"extension"`
}

// Result aggregates all findings for one input.
type Result struct {
	IsValid  bool              `json:"isValid"`
	Errors   []ValidationError `json:"errors,omitempty"`
	FileInfo FileInfo          `json:"fileInfo"`
}

// Validator checks conversion inputs against configured limits.
type Validator struct {
	logger logger.Logger
	config *Config
}

// NewValidator creates a validator. A nil config gets defaults.
func NewValidator(log logger.Logger, config *Config) *Validator {
	if config == nil {
		config = DefaultConfig()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Validator{logger: log, config: config}
}

// Validate checks a named byte stream and returns all findings at once
// rather than stopping at the first.
func (v *Validator) Validate(name string, data []byte) *Result {
	result := &Result{
		IsValid: true,
		Errors:  make([]ValidationError, 0),
		FileInfo: FileInfo{
			Filename:  name,
			Size:      int64(len(data)),
			Extension: strings.ToLower(filepath.Ext(name)),
		},
	}

	if len(data) == 0 {
		result.addError("EMPTY_FILE", "file has no content", "size")
		return result
	}

	if v.config.MaxFileSize > 0 && result.FileInfo.Size > v.config.MaxFileSize {
		result.addError("FILE_TOO_LARGE",
			fmt.Sprintf("file size exceeds maximum limit of %d bytes", v.config.MaxFileSize), "size")
	}

	allowedMimes, ok := v.config.AllowedTypes[result.FileInfo.Extension]
	if !ok {
		result.addError("INVALID_FILE_TYPE",
			fmt.Sprintf("file type %s is not allowed", result.FileInfo.Extension), "extension")
	}

	result.FileInfo.MimeType = sniffMimeType(data)
	if ok && !matchesMime(result.FileInfo.MimeType, allowedMimes) {
		result.addError("MIME_MISMATCH",
			fmt.Sprintf("content type %s does not match extension %s",
				result.FileInfo.MimeType, result.FileInfo.Extension), "mimeType")
	}

	if !result.IsValid {
		v.logger.Warn("input failed validation",
			logger.String("filename", name),
			logger.Int("findings", len(result.Errors)),
		)
	}
	return result
}

func (r *Result) addError(code, message, field string) {
	r.IsValid = false
	r.Errors = append(r.Errors, ValidationError{Code: code, Message: message, Field: field})
}

// sniffMimeType reads the leading bytes only; DetectContentType never needs
// more than 512.
func sniffMimeType(data []byte) string {
	if len(data) > 512 {
		data = data[:512]
	}
	mime := http.DetectContentType(data)
	// Strip parameters like "; charset=utf-8".
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	return strings.TrimSpace(mime)
}

func matchesMime(mime string, allowed []string) bool {
	for _, m := range allowed {
		if m == mime {
			return true
		}
	}
	return false
}
