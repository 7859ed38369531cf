package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attemptservice "quizbowl_backend/internals/features/attempts/service"
	qmodel "quizbowl_backend/internals/features/questions/model"
	questionservice "quizbowl_backend/internals/features/questions/service"
)

// stubProvider serves a fixed question set so screens can be driven without
// a database.
type stubProvider struct {
	rows []qmodel.QuestionModel
}

func (p *stubProvider) FetchQuestions(_ context.Context, course string, limit int, _ bool) ([]qmodel.QuestionModel, *questionservice.PartialResult, error) {
	var partial *questionservice.PartialResult
	if limit > 0 && len(p.rows) < limit {
		partial = &questionservice.PartialResult{Course: course, Requested: limit, Returned: len(p.rows)}
	}
	return p.rows, partial, nil
}

func newScriptedApp(input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		in:  bufio.NewReader(strings.NewReader(input)),
		out: out,
	}, out
}

func completedAttempt(t *testing.T, n int) (*attemptservice.QuizAttempt, *questionservice.PartialResult) {
	t.Helper()
	provider := &stubProvider{}
	for i := 1; i <= n; i++ {
		provider.rows = append(provider.rows, qmodel.QuestionModel{
			QuestionID:      int64(i),
			QuestionText:    fmt.Sprintf("question %d", i),
			QuestionOptionA: "a", QuestionOptionB: "b",
			QuestionOptionC: "c", QuestionOptionD: "d",
			QuestionCorrect: "A",
		})
	}

	attempt, partial, err := attemptservice.StartQuizAttempt(context.Background(), provider, "ds 3850",
		attemptservice.AttemptOptions{SampleSize: 10, Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)
	for attempt.State() == attemptservice.AttemptStateInProgress {
		_, err := attempt.SubmitAnswer("a")
		require.NoError(t, err)
		require.NoError(t, attempt.Advance())
	}
	return attempt, partial
}

func TestResultsScreenShowsScoreAndShortQuizNote(t *testing.T) {
	attempt, partial := completedAttempt(t, 3)
	require.NotNil(t, partial)

	app, out := newScriptedApp("2\n")
	app.attempt = attempt
	app.partial = partial

	next, err := app.resultsScreen()
	require.NoError(t, err)
	assert.Equal(t, ScreenLogin, next)

	text := out.String()
	assert.Contains(t, text, "You scored 3 out of 3.")
	assert.Contains(t, text, "10.0 / 10")
	assert.Contains(t, text, "3 questions instead of the usual 10")

	assert.Nil(t, app.attempt)
	assert.Nil(t, app.partial)
}

func TestResultsScreenFullQuizHasNoNote(t *testing.T) {
	attempt, partial := completedAttempt(t, 10)
	require.Nil(t, partial)

	app, out := newScriptedApp("1\n")
	app.attempt = attempt

	next, err := app.resultsScreen()
	require.NoError(t, err)
	assert.Equal(t, ScreenCourseSelect, next)
	assert.NotContains(t, out.String(), "instead of the usual")
}
