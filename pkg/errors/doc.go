// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Catalog operations report failures with one of the catalog codes
// (INVALID_KIND, DUPLICATE_NAME, UNKNOWN_ENTRY, ...). Transport layers use
// CodeOf to translate them into status codes.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeUnknownEntry,
//	    "required item not found in catalog",
//	    map[string]any{
//	        "entry":  "Egg",
//	        "parent": "Pancake",
//	    },
//	)
//
//	if errors.IsCode(err, errors.ErrCodeUnknownEntry) {
//	    // ...
//	}
package errors
