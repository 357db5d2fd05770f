// Package reader loads the whole target file into memory as UTF-8 text
package reader

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/UnendingLoop/minigrep/internal/model"
)

func ReadDocument(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("error opening file %q: %w", fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", fmt.Errorf("specified source filename %q: %w", fileName, model.ErrIsDirectory)
	}

	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("couldn't read file %q: %w", fileName, err)
	}

	if !utf8.Valid(raw) {
		return "", fmt.Errorf("file %q: %w", fileName, model.ErrNotUTF8)
	}

	return string(raw), nil
}
