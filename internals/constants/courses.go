package constants

// Default course tables shipped with the seed bank. A deployment can
// override the allow-list via the COURSE_ALLOWLIST env var.
var DefaultCourses = []string{
	"ds 3850",
	"ds 3860",
	"hist 4093",
	"mkt 4100",
}

// Option letters in display order. Every question carries exactly four
// options, A through D.
var OptionLetters = []string{"A", "B", "C", "D"}

// Tables whose names start with this prefix belong to SQLite itself and are
// never listed as courses.
const ReservedTablePrefix = "sqlite_"

// DefaultSampleSize is the number of questions drawn for one attempt when
// QUIZ_SAMPLE_SIZE is not set.
const DefaultSampleSize = 10
