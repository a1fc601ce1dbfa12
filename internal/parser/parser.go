package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/prigest/internal/record"
)

// File is one decoded measurement file.
type File struct {
	Name      string
	SizeBytes int64
	Encoding  string
	Records   record.Stream
}

// Parser converts raw file bytes into a record stream.
type Parser interface {
	Parse(r io.Reader, filename string) (*File, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pri": true,
	".prd": true,
	".stm": true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if SupportedExtensions[ext] {
		return &PRIParser{}, nil
	}
	return nil, fmt.Errorf("unsupported file extension: %s", ext)
}
