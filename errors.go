package sitemap

import (
	"errors"
)

var (
	// ErrInvalidArgument is matched by every error caused by a nil input or an invalid entry.
	ErrInvalidArgument = errors.New("sitemap: invalid argument")

	// ErrTooManyEntries is returned when a sitemap or an index holds more than MaxEntries entries.
	// It is returned in lenient mode as well.
	ErrTooManyEntries = errors.New("sitemap: too many entries")
)

// ValidationError describes the first invalid field found in a sitemap or an index.
type ValidationError struct {
	// Path locates the field, e.g. "url[3].video[0].thumbnail_loc".
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return "sitemap: " + e.Reason
	}
	return "sitemap: " + e.Path + ": " + e.Reason
}

// Unwrap makes errors.Is(err, ErrInvalidArgument) hold for validation errors.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(path, reason string) error {
	return &ValidationError{Path: path, Reason: reason}
}

// within prefixes the path of a validation error with parent.
func within(parent string, err error) error {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	path := parent
	if verr.Path != "" {
		path += "." + verr.Path
	}
	return &ValidationError{Path: path, Reason: verr.Reason}
}
