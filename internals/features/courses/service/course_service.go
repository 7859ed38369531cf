package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"quizbowl_backend/internals/databases"
	"quizbowl_backend/internals/features/courses/dto"
	"quizbowl_backend/internals/helpers"
)

var validateCourse = validator.New()

// ErrCourseAlreadyExists fires on an exact, case-sensitive name collision.
var ErrCourseAlreadyExists = errors.New("course already exists")

// Every course table carries the same canonical columns.
const createCourseTableSQL = `CREATE TABLE %s (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	question TEXT NOT NULL,
	option_a TEXT NOT NULL,
	option_b TEXT NOT NULL,
	option_c TEXT NOT NULL,
	option_d TEXT NOT NULL,
	correct_answer TEXT NOT NULL
)`

type CourseService struct {
	DB *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{DB: db}
}

// ListCourses returns every course table in the store, in name order.
// Reserved SQLite tables and anything failing the identifier rules are
// skipped rather than reported.
func (s *CourseService) ListCourses(ctx context.Context) ([]dto.CourseDTO, error) {
	var names []string
	err := s.DB.WithContext(ctx).
		Raw(`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`).
		Scan(&names).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list courses: %v", databases.ErrStoreUnavailable, err)
	}

	out := make([]dto.CourseDTO, 0, len(names))
	for _, n := range names {
		if helpers.ValidateCourseName(n) != nil {
			continue
		}
		out = append(out, dto.CourseDTO{CourseName: n})
	}
	return out, nil
}

// CourseExists checks for an exact table-name match. SQLite compares TEXT
// with case sensitivity here, which is the collision rule we want.
func (s *CourseService) CourseExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).
		Scan(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: check course %q: %v", databases.ErrStoreUnavailable, name, err)
	}
	return count > 0, nil
}

// CreateCourse creates an empty, uniquely named course table.
func (s *CourseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) error {
	if err := validateCourse.Struct(&req); err != nil {
		return fmt.Errorf("%w: %v", helpers.ErrInvalidCourseName, err)
	}

	table, err := helpers.QuoteCourseTable(req.CourseName)
	if err != nil {
		return err
	}

	exists, err := s.CourseExists(ctx, req.CourseName)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %q", ErrCourseAlreadyExists, req.CourseName)
	}

	if err := s.DB.WithContext(ctx).Exec(fmt.Sprintf(createCourseTableSQL, table)).Error; err != nil {
		// SQLite folds identifier case, so a name differing only in case
		// still collides at CREATE TABLE even though the exact-match check
		// above passed.
		if strings.Contains(err.Error(), "already exists") {
			return fmt.Errorf("%w: %q", ErrCourseAlreadyExists, req.CourseName)
		}
		return fmt.Errorf("create course %q: %w", req.CourseName, err)
	}

	log.Printf("[CourseService] created course %q", req.CourseName)
	return nil
}
