package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"quizbowl_backend/internals/databases"
	coursedto "quizbowl_backend/internals/features/courses/dto"
	courseservice "quizbowl_backend/internals/features/courses/service"
	"quizbowl_backend/internals/features/questions/dto"
	"quizbowl_backend/internals/helpers"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := databases.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	return db
}

func seedCourse(t *testing.T, db *gorm.DB, course string, n int) *QuestionService {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, courseservice.NewCourseService(db).CreateCourse(ctx, coursedto.CreateCourseRequest{CourseName: course}))

	svc := NewQuestionService(db)
	for i := 1; i <= n; i++ {
		_, err := svc.InsertQuestion(ctx, course, dto.CreateQuestionRequest{
			QuestionText:    fmt.Sprintf("question %d", i),
			QuestionOptionA: "alpha",
			QuestionOptionB: "bravo",
			QuestionOptionC: "charlie",
			QuestionOptionD: "delta",
			QuestionCorrect: "B",
		})
		require.NoError(t, err)
	}
	return svc
}

func TestFetchQuestionsRandomSample(t *testing.T) {
	db := newTestDB(t)
	svc := seedCourse(t, db, "ds 3850", 10)
	ctx := context.Background()

	rows, partial, err := svc.FetchQuestions(ctx, "ds 3850", 5, true)
	require.NoError(t, err)
	assert.Nil(t, partial)
	require.Len(t, rows, 5)

	seen := map[int64]bool{}
	for _, r := range rows {
		assert.False(t, seen[r.QuestionID], "sample must not repeat a question")
		seen[r.QuestionID] = true
		assert.GreaterOrEqual(t, r.QuestionID, int64(1))
		assert.LessOrEqual(t, r.QuestionID, int64(10))
	}
}

func TestFetchQuestionsShortCourse(t *testing.T) {
	db := newTestDB(t)
	svc := seedCourse(t, db, "hist 4093", 3)

	rows, partial, err := svc.FetchQuestions(context.Background(), "hist 4093", 10, true)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.NotNil(t, partial, "a short course is a warning, not an error")
	assert.Equal(t, 10, partial.Requested)
	assert.Equal(t, 3, partial.Returned)
	assert.Equal(t, "hist 4093", partial.Course)
}

func TestFetchQuestionsRejectsBadCourseName(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)

	_, _, err := svc.FetchQuestions(context.Background(), `x"; DROP TABLE students; --`, 10, true)
	assert.ErrorIs(t, err, helpers.ErrInvalidCourseName)
}

func TestInsertQuestionValidation(t *testing.T) {
	db := newTestDB(t)
	svc := seedCourse(t, db, "ds 3860", 2)
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.CreateQuestionRequest
	}{
		{"empty option_b", dto.CreateQuestionRequest{
			QuestionText: "q", QuestionOptionA: "a", QuestionOptionB: "",
			QuestionOptionC: "c", QuestionOptionD: "d", QuestionCorrect: "A",
		}},
		{"whitespace only question", dto.CreateQuestionRequest{
			QuestionText: "   ", QuestionOptionA: "a", QuestionOptionB: "b",
			QuestionOptionC: "c", QuestionOptionD: "d", QuestionCorrect: "A",
		}},
		{"indicator outside A-D", dto.CreateQuestionRequest{
			QuestionText: "q", QuestionOptionA: "a", QuestionOptionB: "b",
			QuestionOptionC: "c", QuestionOptionD: "d", QuestionCorrect: "E",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.InsertQuestion(ctx, "ds 3860", tt.req)
			assert.ErrorIs(t, err, ErrValidation)

			count, countErr := svc.CountQuestions(ctx, "ds 3860")
			require.NoError(t, countErr)
			assert.EqualValues(t, 2, count, "a rejected insert must not touch storage")
		})
	}
}

func TestInsertQuestionNormalizesIndicator(t *testing.T) {
	db := newTestDB(t)
	svc := seedCourse(t, db, "mkt 4100", 0)

	created, err := svc.InsertQuestion(context.Background(), "mkt 4100", dto.CreateQuestionRequest{
		QuestionText: "q", QuestionOptionA: "a", QuestionOptionB: "b",
		QuestionOptionC: "c", QuestionOptionD: "d", QuestionCorrect: " c ",
	})
	require.NoError(t, err)
	assert.Equal(t, "C", created.QuestionCorrect)
}

func TestInsertQuestionTargetsCourseTable(t *testing.T) {
	db := newTestDB(t)
	svc := seedCourse(t, db, "ds 3850", 0)
	ctx := context.Background()

	created, err := svc.InsertQuestion(ctx, "ds 3850", dto.CreateQuestionRequest{
		QuestionText: "q", QuestionOptionA: "a", QuestionOptionB: "b",
		QuestionOptionC: "c", QuestionOptionD: "d", QuestionCorrect: "A",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, created.QuestionID)

	// The row must land in the course table itself; no side table may
	// appear for the model type.
	var count int64
	require.NoError(t, db.Raw(`SELECT COUNT(*) FROM "ds 3850"`).Scan(&count).Error)
	assert.EqualValues(t, 1, count)

	var stray int64
	require.NoError(t, db.Raw(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'question_models'`,
	).Scan(&stray).Error)
	assert.Zero(t, stray)
}

func TestInsertListDeleteRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := seedCourse(t, db, "ds 3850", 2)
	ctx := context.Background()

	created, err := svc.InsertQuestion(ctx, "ds 3850", dto.CreateQuestionRequest{
		QuestionText: "what is new", QuestionOptionA: "a", QuestionOptionB: "b",
		QuestionOptionC: "c", QuestionOptionD: "d", QuestionCorrect: "D",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, created.QuestionID, "ids are assigned by the store")

	listed, err := svc.ListAllQuestions(ctx, "ds 3850")
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, created.QuestionID, listed[2].QuestionID)
	assert.Equal(t, "what is new", listed[2].QuestionText)

	require.NoError(t, svc.DeleteQuestion(ctx, "ds 3850", created.QuestionID))

	listed, err = svc.ListAllQuestions(ctx, "ds 3850")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	for _, q := range listed {
		assert.NotEqual(t, created.QuestionID, q.QuestionID)
	}
}

func TestUpdateQuestion(t *testing.T) {
	db := newTestDB(t)
	svc := seedCourse(t, db, "ds 3850", 1)
	ctx := context.Background()

	err := svc.UpdateQuestion(ctx, "ds 3850", 1, dto.UpdateQuestionRequest{
		QuestionText: "rewritten", QuestionOptionA: "w", QuestionOptionB: "x",
		QuestionOptionC: "y", QuestionOptionD: "z", QuestionCorrect: "d",
	})
	require.NoError(t, err)

	listed, err := svc.ListAllQuestions(ctx, "ds 3850")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "rewritten", listed[0].QuestionText)
	assert.Equal(t, "D", listed[0].QuestionCorrect)
}

func TestUpdateAndDeleteMissingQuestion(t *testing.T) {
	db := newTestDB(t)
	svc := seedCourse(t, db, "ds 3850", 1)
	ctx := context.Background()

	err := svc.UpdateQuestion(ctx, "ds 3850", 42, dto.UpdateQuestionRequest{
		QuestionText: "q", QuestionOptionA: "a", QuestionOptionB: "b",
		QuestionOptionC: "c", QuestionOptionD: "d", QuestionCorrect: "A",
	})
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	assert.ErrorIs(t, svc.DeleteQuestion(ctx, "ds 3850", 42), ErrQuestionNotFound)
}

func TestListAllQuestionsOrderedByID(t *testing.T) {
	db := newTestDB(t)
	svc := seedCourse(t, db, "ds 3860", 5)

	listed, err := svc.ListAllQuestions(context.Background(), "ds 3860")
	require.NoError(t, err)
	require.Len(t, listed, 5)
	for i, q := range listed {
		assert.EqualValues(t, i+1, q.QuestionID)
	}
}
