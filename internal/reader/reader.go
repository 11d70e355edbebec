// Package reader loads the whole target file into memory
package reader

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")

// ReadContents reads fileName fully and closes it before returning.
// Errors from the filesystem are wrapped, not replaced.
func ReadContents(fileName string) (string, error) {
	// проверяем не папка ли это
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("error opening file %q: %w", fileName, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("specified source filename %q is a directory", fileName)
	}

	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("couldn't read file %q: %w", fileName, err)
	}

	if !utf8.Valid(raw) {
		return "", fmt.Errorf("file %q: %w", fileName, ErrInvalidEncoding)
	}

	return string(raw), nil
}
