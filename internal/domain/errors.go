package domain

import (
	"errors"
	"fmt"
)

// ErrorKind tags pipeline failures so callers can route them without
// string matching. Per-item and per-source failures never abort the
// containing run.
type ErrorKind string

const (
	// KindFetch covers network and timeout failures; the current
	// adapter/keyword attempt is skipped.
	KindFetch ErrorKind = "fetch"
	// KindParse covers malformed pages or fields; the item is skipped.
	KindParse ErrorKind = "parse"
	// KindValidation covers items below the minimum-quality predicate;
	// discarded silently.
	KindValidation ErrorKind = "validation"
	// KindPersistence covers write failures; only the uncommitted batch
	// is rolled back.
	KindPersistence ErrorKind = "persistence"
	// KindClassification covers inference or lexicon failures; a neutral
	// default result is substituted.
	KindClassification ErrorKind = "classification"
)

// PipelineError wraps a cause with its taxonomy kind.
type PipelineError struct {
	Kind ErrorKind
	Err  error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }

// WrapError tags err with kind; nil passes through.
func WrapError(kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &PipelineError{Kind: kind, Err: err}
}

// Errorf builds a tagged error from a format string.
func Errorf(kind ErrorKind, format string, args ...any) error {
	return &PipelineError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the taxonomy kind from err, or "" when untagged.
func KindOf(err error) ErrorKind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// ErrCrawlInProgress rejects a second concurrent crawl for the same
// company; callers may retry after the running crawl settles.
var ErrCrawlInProgress = errors.New("crawl already in progress for company")

// ErrNotFound signals a missing entity from a repository lookup.
var ErrNotFound = errors.New("not found")
