package site

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// sourcePath maps a page locator to its markdown source, relative to the
// content directory: pages/1940.html -> pages/1940.md.
func sourcePath(locator string) string {
	return strings.TrimSuffix(locator, path.Ext(locator)) + ".md"
}

// cleanLocator rejects locators that would escape the output directory.
func cleanLocator(locator string) (string, error) {
	clean := path.Clean(filepath.ToSlash(locator))
	if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") || clean == "." {
		return "", fmt.Errorf("locator %q is outside the site root", locator)
	}
	return clean, nil
}

// basePath returns the relative prefix from a page back to the site root.
func basePath(locator string) string {
	return strings.Repeat("../", strings.Count(locator, "/"))
}

// matchesAny checks if relPath matches any of the given glob patterns.
// It uses doublestar for ** support and also tries the bare file name.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}

		base := path.Base(normalized)
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
