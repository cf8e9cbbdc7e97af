package errors

import (
	"strings"
	"unicode"
)

// ValidateTextureName validates a texture name recorded in manifests.
// Names are derived from relative file paths; the validation is
// intentionally conservative to keep manifests safe to re-import.
func ValidateTextureName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "texture name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidPath, "texture name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "texture name contains invalid control characters")
		}
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidPath, "texture name cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateOutputPrefix validates the atlas filename prefix. The prefix
// becomes part of every output filename, so it must be a simple name
// without path separators.
func ValidateOutputPrefix(prefix string) error {
	if prefix == "" {
		return New(ErrCodeInvalidPath, "output prefix cannot be empty")
	}

	if strings.ContainsAny(prefix, "/\\") {
		return New(ErrCodeInvalidPath, "output prefix cannot contain path separators")
	}

	for _, r := range prefix {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output prefix contains invalid characters")
		}
	}

	return nil
}
