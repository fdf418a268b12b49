package inspect

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmd/docmd/internal/models"
)

func TestInspectDocx(t *testing.T) {
	data := []byte("PK\x03\x04 not a real archive, but inspect never opens it")

	info, err := Inspect(data, ".docx")
	require.NoError(t, err)

	assert.Equal(t, models.Docx, info.FileType)
	assert.Equal(t, int64(len(data)), info.FileSize)

	sum := sha256.Sum256(data)
	assert.Equal(t, hex.EncodeToString(sum[:]), info.Hash)
	assert.Zero(t, info.Pages)
}

func TestInspectUppercaseExtension(t *testing.T) {
	info, err := Inspect([]byte("x"), ".DOCX")
	require.NoError(t, err)
	assert.Equal(t, models.Docx, info.FileType)
}

func TestInspectUnsupportedExtension(t *testing.T) {
	_, err := Inspect([]byte("hello"), ".txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".txt")
}

func TestInspectMalformedPDF(t *testing.T) {
	_, err := Inspect([]byte("%PDF-1.4 truncated"), ".pdf")
	require.Error(t, err)
}
