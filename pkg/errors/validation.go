package errors

import (
	"strings"
	"unicode"
)

// ValidatePackName validates an extension pack name.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or whitespace
//   - Maximum length of 64 characters
//
// Pack names end up in log lines and menu diagnostics, so they must stay
// printable and compact.
func ValidatePackName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidManifest, "pack name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidManifest, "pack name too long (max 64 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidManifest, "pack name cannot contain whitespace or control characters")
		}
	}

	return nil
}

// ValidateNodeType validates a node type name as used in registration
// mappings. Type names are host identifiers: non-empty, printable, no
// whitespace.
func ValidateNodeType(name string) error {
	if name == "" {
		return New(ErrCodeInvalidManifest, "node type cannot be empty")
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidManifest, "node type %q cannot contain whitespace or control characters", name)
		}
	}

	return nil
}

// ValidateWidgetName validates a widget name. Widget names are unique per
// node and referenced from manifests, so they follow the same identifier
// rules as node types, plus a ban on path separators (some hosts persist
// widget values under their names).
func ValidateWidgetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidWidget, "widget name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidWidget, "widget name cannot contain path separators")
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidWidget, "widget name %q cannot contain whitespace or control characters", name)
		}
	}

	return nil
}
