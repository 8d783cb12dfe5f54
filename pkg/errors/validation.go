package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxLevelIDLength bounds tier codes; real codes are at most a few characters.
const maxLevelIDLength = 16

// ValidateLevelID validates a tier code such as "AAA" or "CCC+".
//
// Codes double as display labels and as URL query values, so the rules are
// conservative:
//   - No empty codes
//   - No whitespace or control characters
//   - Maximum length of 16 characters
func ValidateLevelID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidCatalog, "level id cannot be empty")
	}

	if len(id) > maxLevelIDLength {
		return New(ErrCodeInvalidCatalog, "level id %q too long (max %d characters)", id, maxLevelIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidCatalog, "level id %q contains whitespace or control characters", id)
		}
	}

	return nil
}

// hexColorRegex matches #rgb and #rrggbb colors.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a CSS hex color ("#15803d" or "#fff").
func ValidateHexColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "invalid hex color: %q", color)
	}
	return nil
}

// ValidatePath validates a catalog or output file path given on the command
// line or in a config file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}
