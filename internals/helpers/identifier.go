package helpers

import (
	"errors"
	"fmt"
	"strings"

	"quizbowl_backend/internals/constants"
)

// Course names become SQLite table names, so every name is checked against a
// strict identifier whitelist before it may appear in any query text. Raw
// interpolation of an unchecked name is never allowed.

var ErrInvalidCourseName = errors.New("invalid course name")

const maxCourseNameLen = 64

// ValidateCourseName accepts non-empty names of at most 64 runes built from
// letters, digits, spaces and underscores, starting with a letter or digit.
// Leading or trailing spaces and SQLite-reserved names are rejected.
func ValidateCourseName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidCourseName)
	}
	if first := []rune(name)[0]; !isAlnum(first) {
		return fmt.Errorf("%w: name must start with a letter or digit", ErrInvalidCourseName)
	}
	if len([]rune(name)) > maxCourseNameLen {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidCourseName, maxCourseNameLen)
	}
	if strings.TrimSpace(name) != name {
		return fmt.Errorf("%w: name has leading or trailing spaces", ErrInvalidCourseName)
	}
	if strings.HasPrefix(strings.ToLower(name), constants.ReservedTablePrefix) {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidCourseName, name)
	}
	for _, r := range name {
		if !isAlnum(r) && r != ' ' && r != '_' {
			return fmt.Errorf("%w: character %q is not allowed", ErrInvalidCourseName, r)
		}
	}
	return nil
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// QuoteCourseTable validates name and returns it as a double-quoted SQLite
// identifier, safe to place in query text. The whitelist above guarantees the
// name cannot contain a quote character.
func QuoteCourseTable(name string) (string, error) {
	if err := ValidateCourseName(name); err != nil {
		return "", err
	}
	return `"` + name + `"`, nil
}
