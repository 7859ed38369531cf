package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	qmodel "quizbowl_backend/internals/features/questions/model"
	qservice "quizbowl_backend/internals/features/questions/service"
)

/* =========================================================
   STATES & ERRORS
========================================================= */

// AttemptState tags the quiz attempt state machine:
// loading -> in_progress -> completed, with aborted as the error terminal.
type AttemptState string

const (
	AttemptStateLoading    AttemptState = "loading"
	AttemptStateInProgress AttemptState = "in_progress"
	AttemptStateCompleted  AttemptState = "completed"
	AttemptStateAborted    AttemptState = "aborted"
)

var (
	// ErrNoQuestions blocks starting an attempt on an empty course.
	ErrNoQuestions = errors.New("course has no questions")

	// ErrNoSelection is recoverable: the caller re-prompts, state unchanged.
	ErrNoSelection = errors.New("no answer selected")

	// ErrDataIntegrity aborts the attempt: a stored correct-answer indicator
	// matched none of the question's options, so scoring cannot continue.
	ErrDataIntegrity = errors.New("correct answer indicator cannot be resolved")

	ErrNotInProgress = errors.New("attempt is not in progress")
	ErrNoSubmission  = errors.New("current question has no scored submission")
	ErrNotCompleted  = errors.New("attempt is not completed")
)

/* =========================================================
   TYPES
========================================================= */

// QuestionProvider is the data access contract the attempt needs; the
// questions service satisfies it.
type QuestionProvider interface {
	FetchQuestions(ctx context.Context, course string, limit int, randomSample bool) ([]qmodel.QuestionModel, *qservice.PartialResult, error)
}

type AttemptOptions struct {
	// SampleSize caps how many questions one attempt draws; <= 0 draws all.
	SampleSize int

	// ShuffleOptions re-orders each question's four options for display.
	ShuffleOptions bool

	// Rand supplies determinism in tests; nil seeds from the clock.
	Rand *rand.Rand
}

type attemptQuestion struct {
	src     qmodel.QuestionModel
	options []string // display order
}

// QuizAttempt is one student's run through a course. It is single-owner:
// exactly one screen drives it, and it is discarded on completion or
// abandonment.
type QuizAttempt struct {
	AttemptID uuid.UUID
	Course    string

	state       AttemptState
	questions   []attemptQuestion
	index       int
	score       int
	correctText string // resolved from the indicator once per question
	answered    bool
	lastResult  SubmitResult
}

type DisplayQuestion struct {
	Number  int // 1-based, for "Question 3/10"
	Total   int
	Text    string
	Options []string
}

type SubmitResult struct {
	Correct       bool
	CorrectAnswer string
}

type AttemptSummary struct {
	Score int
	Total int
	Scale float64 // score/total on a 0-10 scale, one decimal
}

/* =========================================================
   START
========================================================= */

// StartQuizAttempt loads a sampled, shuffled question set for the course and
// presents its first question. The returned PartialResult, when non-nil,
// tells the caller the attempt will be shorter than requested.
func StartQuizAttempt(ctx context.Context, provider QuestionProvider, course string, opts AttemptOptions) (*QuizAttempt, *qservice.PartialResult, error) {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	a := &QuizAttempt{
		AttemptID: uuid.New(),
		Course:    course,
		state:     AttemptStateLoading,
	}

	rows, partial, err := provider.FetchQuestions(ctx, course, opts.SampleSize, true)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: course %q", ErrNoQuestions, course)
	}

	for _, src := range shuffleQuestions(rng, rows) {
		options := src.Options()
		if opts.ShuffleOptions {
			options = shuffleStrings(rng, options)
		}
		a.questions = append(a.questions, attemptQuestion{src: src, options: options})
	}

	a.state = AttemptStateInProgress
	log.Printf("[QuizAttempt] id=%s course=%q started with %d questions", a.AttemptID, course, len(a.questions))

	if err := a.present(); err != nil {
		return nil, nil, err
	}
	return a, partial, nil
}

/* =========================================================
   STATE MACHINE
========================================================= */

// CurrentQuestion returns the presented question in display order.
func (a *QuizAttempt) CurrentQuestion() (DisplayQuestion, error) {
	if a.state != AttemptStateInProgress {
		return DisplayQuestion{}, fmt.Errorf("%w: state=%s", ErrNotInProgress, a.state)
	}
	q := a.questions[a.index]
	return DisplayQuestion{
		Number:  a.index + 1,
		Total:   len(a.questions),
		Text:    q.src.QuestionText,
		Options: q.options,
	}, nil
}

// SubmitAnswer scores choice against the current question. Each question
// accepts exactly one scored submission: repeat calls before Advance return
// the recorded result without touching the score.
func (a *QuizAttempt) SubmitAnswer(choice string) (SubmitResult, error) {
	if a.state != AttemptStateInProgress {
		return SubmitResult{}, fmt.Errorf("%w: state=%s", ErrNotInProgress, a.state)
	}
	if strings.TrimSpace(choice) == "" {
		return SubmitResult{}, ErrNoSelection
	}
	if a.answered {
		return a.lastResult, nil
	}

	res := SubmitResult{
		Correct:       answersMatch(choice, a.correctText),
		CorrectAnswer: a.correctText,
	}
	if res.Correct {
		a.score++
	}
	a.answered = true
	a.lastResult = res

	log.Printf("[QuizAttempt] id=%s question %d/%d answered correct=%v score=%d",
		a.AttemptID, a.index+1, len(a.questions), res.Correct, a.score)
	return res, nil
}

// Advance moves past a scored question. After the last one the attempt
// completes; otherwise the next question is presented.
func (a *QuizAttempt) Advance() error {
	if a.state != AttemptStateInProgress {
		return fmt.Errorf("%w: state=%s", ErrNotInProgress, a.state)
	}
	if !a.answered {
		return ErrNoSubmission
	}

	a.index++
	if a.index == len(a.questions) {
		a.state = AttemptStateCompleted
		log.Printf("[QuizAttempt] id=%s completed score=%d/%d", a.AttemptID, a.score, len(a.questions))
		return nil
	}
	return a.present()
}

// Summary reports the final result; only a completed attempt has one.
func (a *QuizAttempt) Summary() (AttemptSummary, error) {
	if a.state != AttemptStateCompleted {
		return AttemptSummary{}, fmt.Errorf("%w: state=%s", ErrNotCompleted, a.state)
	}
	total := len(a.questions)
	return AttemptSummary{
		Score: a.score,
		Total: total,
		Scale: math.Round(float64(a.score)/float64(total)*100) / 10,
	}, nil
}

func (a *QuizAttempt) State() AttemptState { return a.state }
func (a *QuizAttempt) Score() int          { return a.score }
func (a *QuizAttempt) Total() int          { return len(a.questions) }

// present resolves the indicator for the question at the current index. A
// question whose indicator matches no option fails closed: the attempt
// aborts instead of mis-scoring.
func (a *QuizAttempt) present() error {
	q := a.questions[a.index].src
	correct, err := resolveCorrectOption(q)
	if err != nil {
		a.state = AttemptStateAborted
		log.Printf("[QuizAttempt] id=%s aborted: %v", a.AttemptID, err)
		return err
	}
	a.correctText = correct
	a.answered = false
	return nil
}

/* =========================================================
   RESOLUTION & SHUFFLING
========================================================= */

// resolveCorrectOption maps the stored indicator to the full option text.
// The canonical encoding is a letter A-D; legacy rows holding the literal
// option text still resolve by case/whitespace-insensitive match.
func resolveCorrectOption(q qmodel.QuestionModel) (string, error) {
	ind := strings.TrimSpace(q.QuestionCorrect)
	opts := q.Options()

	if len(ind) == 1 {
		switch strings.ToUpper(ind) {
		case "A":
			return opts[0], nil
		case "B":
			return opts[1], nil
		case "C":
			return opts[2], nil
		case "D":
			return opts[3], nil
		}
	}
	for _, o := range opts {
		if strings.TrimSpace(o) != "" && answersMatch(o, ind) {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: indicator %q on question id=%d", ErrDataIntegrity, q.QuestionCorrect, q.QuestionID)
}

func answersMatch(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// shuffleQuestions Fisher-Yates shuffles a copy, leaving the input alone.
func shuffleQuestions(rng *rand.Rand, questions []qmodel.QuestionModel) []qmodel.QuestionModel {
	shuffled := make([]qmodel.QuestionModel, len(questions))
	copy(shuffled, questions)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

func shuffleStrings(rng *rand.Rand, values []string) []string {
	shuffled := make([]string, len(values))
	copy(shuffled, values)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
