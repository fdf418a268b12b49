package models

import (
	"time"
)

// FileType identifies a supported source document format.
type FileType string

const (
	PDF  FileType = "pdf"
	Docx FileType = "docx"
)

// DocumentInfo describes a source document without converting it.
type DocumentInfo struct {
	Title    string   `json:"title,omitempty"`
	Author   string   `json:"author,omitempty"`
	FileType FileType `json:"fileType"`
	FileSize int64    `json:"fileSize"`
	Pages    int      `json:"pages,omitempty"`
	Hash     string   `json:"hash"`
}

// Status tracks the lifecycle of a batch conversion item.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// ConversionResult is the outcome of converting one document.
// All fields are transient; nothing is persisted across calls.
type ConversionResult struct {
	ID        string        `json:"id"`
	Source    string        `json:"source"`
	Output    string        `json:"output,omitempty"`
	Markdown  string        `json:"-"`
	Status    Status        `json:"status"`
	Error     string        `json:"error,omitempty"`
	Bytes     int           `json:"bytes"`
	Duration  time.Duration `json:"-"`
	ElapsedMs int64         `json:"elapsedMs"`
}
