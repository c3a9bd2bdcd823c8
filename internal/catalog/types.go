package catalog

import (
	"errors"
	"fmt"
)

// PageEntry is one page of the site: its display title, its relative
// locator and the lowercase keywords describing its content.
type PageEntry struct {
	Title    string   `json:"title" yaml:"title"`
	Locator  string   `json:"locator" yaml:"locator"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// clone returns a copy of e that shares no memory with it.
func (e PageEntry) clone() PageEntry {
	out := e
	if e.Keywords != nil {
		out.Keywords = append([]string(nil), e.Keywords...)
	}
	return out
}

// file is the on-disk shape of a catalog.
type file struct {
	Pages []PageEntry `yaml:"pages"`
}

// Validation errors returned, wrapped in an *EntryError where they concern
// a single page, when a catalog is constructed.
var (
	ErrEmptyCatalog     = errors.New("catalog has no pages")
	ErrEmptyTitle       = errors.New("title is empty")
	ErrEmptyLocator     = errors.New("locator is empty")
	ErrInvalidKeyword   = errors.New("keyword must be a non-empty lowercase token")
	ErrDuplicateLocator = errors.New("locator already used by an earlier page")
)

// EntryError reports which catalog entry failed validation and why.
type EntryError struct {
	Index int
	Field string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("catalog entry %d: %s: %v", e.Index, e.Field, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }
