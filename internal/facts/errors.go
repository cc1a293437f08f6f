package facts

import (
	"errors"
	"fmt"
)

// CollectError represents a failure of one collection category
type CollectError struct {
	Kind     CollectErrorKind
	Category Category // The category that failed
	Cause    error    // Underlying error
}

// CollectErrorKind represents the class of collection failure
type CollectErrorKind int

// Collect error kind constants
const (
	// KindDependencyMissing indicates a required OS facility is absent
	KindDependencyMissing CollectErrorKind = iota
	// KindCollection indicates the facility ran but produced unusable output
	KindCollection
	// KindPermissionDenied indicates insufficient privilege to query a source
	KindPermissionDenied
)

// String returns a string representation of the collect error kind
func (k CollectErrorKind) String() string {
	switch k {
	case KindDependencyMissing:
		return "DependencyMissing"
	case KindCollection:
		return "CollectionError"
	case KindPermissionDenied:
		return "PermissionDenied"
	default:
		return "UnknownError"
	}
}

// Error implements the error interface for CollectError
func (ce *CollectError) Error() string {
	return fmt.Sprintf("collection failed [%s] for category %s: %v",
		ce.Kind.String(),
		ce.Category,
		ce.Cause)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As
func (ce *CollectError) Unwrap() error {
	return ce.Cause
}

// DependencyMissing builds a CollectError for an absent OS facility
func DependencyMissing(category Category, cause error) *CollectError {
	return &CollectError{Kind: KindDependencyMissing, Category: category, Cause: cause}
}

// CollectionFailed builds a CollectError for unusable facility output
func CollectionFailed(category Category, cause error) *CollectError {
	return &CollectError{Kind: KindCollection, Category: category, Cause: cause}
}

// PermissionDenied builds a CollectError for a privilege failure
func PermissionDenied(category Category, cause error) *CollectError {
	return &CollectError{Kind: KindPermissionDenied, Category: category, Cause: cause}
}

// IsDependencyMissing returns true if the error is a missing-facility failure
func IsDependencyMissing(err error) bool {
	var ce *CollectError
	return errors.As(err, &ce) && ce.Kind == KindDependencyMissing
}

// IsCollectionError returns true if the error is an unparseable-output failure
func IsCollectionError(err error) bool {
	var ce *CollectError
	return errors.As(err, &ce) && ce.Kind == KindCollection
}

// IsPermissionDenied returns true if the error is a privilege failure
func IsPermissionDenied(err error) bool {
	var ce *CollectError
	return errors.As(err, &ce) && ce.Kind == KindPermissionDenied
}
