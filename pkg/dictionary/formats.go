package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// FileFormat represents the dictionary file formats we can read.
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // plain text, one entry per line
	FormatPack               // msgpack stream with header
)

// FormatInfo describes a supported format.
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Dictionary",
		Extensions:  []string{".txt", ".dict"},
	},
	FormatPack: {
		Format:      FormatPack,
		Description: "Packed Binary Dictionary",
		Extensions:  []string{".pack", ".bin"},
	},
}

// DetectFileFormat decides a file's format from its extension, then verifies
// the content actually matches before committing to it.
func DetectFileFormat(path string) (FileFormat, error) {
	if _, err := os.Stat(path); err != nil {
		return FormatUnknown, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if ext != e {
				continue
			}
			if err := ValidateFileFormat(path, format); err != nil {
				return FormatUnknown, err
			}
			return format, nil
		}
	}
	return FormatUnknown, fmt.Errorf("unable to detect dictionary format for %s", path)
}

// ValidateFileFormat checks that a file's content matches the expected format.
func ValidateFileFormat(path string, expected FileFormat) error {
	switch expected {
	case FormatText:
		return validateTextFormat(path)
	case FormatPack:
		return validatePackFormat(path)
	}
	return fmt.Errorf("unknown format: %v", expected)
}

func validatePackFormat(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var header packHeader
	if err := msgpack.NewDecoder(bufio.NewReader(file)).Decode(&header); err != nil {
		return fmt.Errorf("failed to read pack header from %s: %w", path, err)
	}
	if header.Magic != packMagic {
		return fmt.Errorf("%s has wrong magic %q", path, header.Magic)
	}
	if header.Count < 0 {
		return fmt.Errorf("%s has negative entry count %d", path, header.Count)
	}
	return nil
}

func validateTextFormat(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

// GetFormatInfo returns the description of a specific format.
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}
