package sources

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("source not found")

// Resolve reads path as a source file, or as a module directory holding
// main.<ext>.
func Resolve(path string, ext string) (*Source, error) {
	ext = strings.TrimPrefix(ext, ".")

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}

	if info.Mode().IsRegular() {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return New(path, strings.TrimSuffix(path, "."+ext), string(content)), nil
	}

	if info.IsDir() {
		mainPath := filepath.Join(path, "main."+ext)
		content, err := os.ReadFile(mainPath)
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, mainPath)
		}
		if err != nil {
			return nil, err
		}
		return New(mainPath, filepath.Clean(path), string(content)), nil
	}

	return nil, fmt.Errorf("%w: %s is not a file or directory", ErrNotFound, path)
}
