package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"quizbowl_backend/internals/features/questions/dto"
	"quizbowl_backend/internals/features/questions/model"
	"quizbowl_backend/internals/helpers"
)

var validateQuestion = validator.New()

var (
	// ErrValidation marks admin input with missing or malformed fields. The
	// store is never touched when it fires; the caller re-prompts.
	ErrValidation = errors.New("question validation failed")

	// ErrQuestionNotFound fires when an update or delete matches no row.
	ErrQuestionNotFound = errors.New("question not found")
)

// PartialResult reports a course shorter than the requested sample. It is a
// warning, not an error: the attempt proceeds with the questions that exist.
type PartialResult struct {
	Course    string
	Requested int
	Returned  int
}

type QuestionService struct {
	DB *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{DB: db}
}

/* =========================================================
   READS
========================================================= */

// FetchQuestions returns up to limit questions from the course table. With
// randomSample the subset is drawn uniformly without replacement, otherwise
// rows come back in id order. limit <= 0 means the whole table. The second
// return value is non-nil when the course holds fewer rows than requested.
func (s *QuestionService) FetchQuestions(ctx context.Context, course string, limit int, randomSample bool) ([]model.QuestionModel, *PartialResult, error) {
	table, err := helpers.QuoteCourseTable(course)
	if err != nil {
		return nil, nil, err
	}

	q := s.DB.WithContext(ctx).Table(table)
	if randomSample {
		q = q.Order("RANDOM()")
	} else {
		q = q.Order("id")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []model.QuestionModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, nil, fmt.Errorf("fetch questions for course %q: %w", course, err)
	}

	var partial *PartialResult
	if limit > 0 && len(rows) < limit {
		partial = &PartialResult{Course: course, Requested: limit, Returned: len(rows)}
		log.Printf("[QuestionService] course %q has %d of %d requested questions", course, len(rows), limit)
	}
	return rows, partial, nil
}

// ListAllQuestions is the admin editor's full dump, ordered by id.
func (s *QuestionService) ListAllQuestions(ctx context.Context, course string) ([]dto.QuestionDTO, error) {
	rows, _, err := s.FetchQuestions(ctx, course, 0, false)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuestionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToQuestionDTO(r))
	}
	return out, nil
}

// CountQuestions reports the number of rows in a course table.
func (s *QuestionService) CountQuestions(ctx context.Context, course string) (int64, error) {
	table, err := helpers.QuoteCourseTable(course)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := s.DB.WithContext(ctx).Table(table).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count questions for course %q: %w", course, err)
	}
	return count, nil
}

/* =========================================================
   ADMIN WRITES
========================================================= */

func (s *QuestionService) InsertQuestion(ctx context.Context, course string, req dto.CreateQuestionRequest) (dto.QuestionDTO, error) {
	req.Normalize()
	if err := validateQuestion.Struct(&req); err != nil {
		return dto.QuestionDTO{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	table, err := helpers.QuoteCourseTable(course)
	if err != nil {
		return dto.QuestionDTO{}, err
	}

	// Create on a struct resolves the insert target from the model schema,
	// not from the Table expression, so the insert goes raw like the delete.
	m := req.ToModel()
	res := s.DB.WithContext(ctx).Exec(fmt.Sprintf(
		`INSERT INTO %s (question, option_a, option_b, option_c, option_d, correct_answer) VALUES (?, ?, ?, ?, ?, ?)`, table),
		m.QuestionText, m.QuestionOptionA, m.QuestionOptionB, m.QuestionOptionC, m.QuestionOptionD, m.QuestionCorrect)
	if res.Error != nil {
		return dto.QuestionDTO{}, fmt.Errorf("insert question into course %q: %w", course, res.Error)
	}

	// Single-connection pool, so the rowid belongs to the insert above.
	if err := s.DB.WithContext(ctx).Raw(`SELECT last_insert_rowid()`).Scan(&m.QuestionID).Error; err != nil {
		return dto.QuestionDTO{}, fmt.Errorf("read id of inserted question in course %q: %w", course, err)
	}

	log.Printf("[QuestionService] inserted question id=%d into course %q", m.QuestionID, course)
	return dto.ToQuestionDTO(m), nil
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, course string, id int64, req dto.UpdateQuestionRequest) error {
	req.Normalize()
	if err := validateQuestion.Struct(&req); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	table, err := helpers.QuoteCourseTable(course)
	if err != nil {
		return err
	}

	res := s.DB.WithContext(ctx).Table(table).Where("id = ?", id).Updates(map[string]interface{}{
		"question":       req.QuestionText,
		"option_a":       req.QuestionOptionA,
		"option_b":       req.QuestionOptionB,
		"option_c":       req.QuestionOptionC,
		"option_d":       req.QuestionOptionD,
		"correct_answer": req.QuestionCorrect,
	})
	if res.Error != nil {
		return fmt.Errorf("update question id=%d in course %q: %w", id, course, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id=%d in course %q", ErrQuestionNotFound, id, course)
	}

	log.Printf("[QuestionService] updated question id=%d in course %q", id, course)
	return nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, course string, id int64) error {
	table, err := helpers.QuoteCourseTable(course)
	if err != nil {
		return err
	}

	res := s.DB.WithContext(ctx).Exec(fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table), id)
	if res.Error != nil {
		return fmt.Errorf("delete question id=%d from course %q: %w", id, course, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id=%d in course %q", ErrQuestionNotFound, id, course)
	}

	log.Printf("[QuestionService] deleted question id=%d from course %q", id, course)
	return nil
}
