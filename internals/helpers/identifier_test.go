package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCourseName(t *testing.T) {
	tests := []struct {
		name    string
		course  string
		wantErr bool
	}{
		{"seed course with space", "ds 3850", false},
		{"upper case", "HIST 4093", false},
		{"underscore", "intro_to_go", false},
		{"digits only", "101", false},
		{"empty", "", true},
		{"leading space", " ds 3850", true},
		{"trailing space", "ds 3850 ", true},
		{"sql injection", `x"; DROP TABLE students; --`, true},
		{"quote character", `a"b`, true},
		{"semicolon", "a;b", true},
		{"dash", "mkt-4100", true},
		{"leading underscore", "_hidden", true},
		{"reserved prefix", "sqlite_master", true},
		{"reserved prefix upper", "SQLITE_temp", true},
		{"too long", strings.Repeat("a", 65), true},
		{"max length ok", strings.Repeat("a", 64), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCourseName(tt.course)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidCourseName)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuoteCourseTable(t *testing.T) {
	quoted, err := QuoteCourseTable("ds 3850")
	require.NoError(t, err)
	assert.Equal(t, `"ds 3850"`, quoted)

	_, err = QuoteCourseTable(`x"; DROP TABLE students; --`)
	assert.ErrorIs(t, err, ErrInvalidCourseName)
}
