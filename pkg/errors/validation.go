package errors

import (
	"strings"
	"unicode"
)

// ValidateFigureName validates a stored-figure name for safety and
// correctness. Names become storage keys (and file names for the file
// backend), so the rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateFigureName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "figure name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidName, "figure name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "figure name contains control characters")
		}
	}

	dangerous := []string{"..", "/", "\\", "\x00"}
	for _, pattern := range dangerous {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "figure name contains invalid sequence: %q", pattern)
		}
	}

	return nil
}

// ValidateElementID validates a DOM element id for the embedding page.
// Empty is allowed (an id is generated), but a supplied id must be usable
// inside an HTML attribute and a JavaScript string literal.
func ValidateElementID(id string) error {
	if id == "" {
		return nil
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidInput, "element id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "element id cannot contain whitespace or control characters")
		}
		if r == '"' || r == '\'' || r == '<' || r == '>' || r == '&' {
			return New(ErrCodeInvalidInput, "element id contains invalid character: %q", r)
		}
	}

	return nil
}
