package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const maxFilenameLength = 100

var (
	reInvalidChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	reSpaces       = regexp.MustCompile(`\s+`)
)

// SanitizeFilename replaces characters that are invalid in file names,
// collapses whitespace and caps the result at 100 characters.
func SanitizeFilename(name string) string {
	s := reInvalidChars.ReplaceAllString(name, "_")
	s = strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))

	r := []rune(s)
	if len(r) > maxFilenameLength {
		s = strings.TrimSpace(string(r[:maxFilenameLength]))
	}
	if s == "" || s == "." || s == ".." {
		return "untitled"
	}
	return s
}

// EnsureDirs creates required directories if they don't exist
func EnsureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// RemoveFile deletes path. A missing file is not an error.
func RemoveFile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// CleanDir removes every regular file directly inside dir and returns the
// names it removed.
func CleanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var removed []string
	var errs []error
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := RemoveFile(filepath.Join(dir, e.Name())); err != nil {
			errs = append(errs, err)
			continue
		}
		removed = append(removed, e.Name())
	}
	return removed, errors.Join(errs...)
}
