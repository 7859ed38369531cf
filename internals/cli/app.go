package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gorm.io/gorm"

	attemptservice "quizbowl_backend/internals/features/attempts/service"
	courseservice "quizbowl_backend/internals/features/courses/service"
	questionservice "quizbowl_backend/internals/features/questions/service"
)

// App owns the terminal screens. The active quiz attempt lives here and only
// here: one screen drives it at a time, and it is dropped when the student
// leaves the quiz path.
type App struct {
	in  *bufio.Reader
	out io.Writer

	Courses   *courseservice.CourseService
	Questions *questionservice.QuestionService

	attempt *attemptservice.QuizAttempt
	partial *questionservice.PartialResult

	// course the admin question editor is working on
	adminCourse string
}

func NewApp(db *gorm.DB) *App {
	return &App{
		in:        bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		Courses:   courseservice.NewCourseService(db),
		Questions: questionservice.NewQuestionService(db),
	}
}

// Run drives the screen loop until the user exits.
func (a *App) Run() error {
	screen := ScreenLogin
	for screen != ScreenExit {
		next, err := a.handle(screen)
		if err != nil {
			return err
		}
		screen = next
	}
	a.printf("Goodbye!\n")
	return nil
}

// handle is the transition table: each screen handler returns the next
// screen. Recoverable errors are surfaced inside the handlers; only broken
// input streams bubble up.
func (a *App) handle(screen Screen) (Screen, error) {
	switch screen {
	case ScreenLogin:
		return a.loginScreen()
	case ScreenCourseSelect:
		return a.courseSelectScreen()
	case ScreenQuiz:
		return a.quizScreen()
	case ScreenResults:
		return a.resultsScreen()
	case ScreenAdminLogin:
		return a.adminLoginScreen()
	case ScreenAdminMenu:
		return a.adminMenuScreen()
	case ScreenAdminAddCourse:
		return a.adminAddCourseScreen()
	case ScreenAdminQuestions:
		return a.adminQuestionsScreen()
	}
	return ScreenExit, fmt.Errorf("unhandled screen %q", screen)
}

/* =========================================================
   PROMPT HELPERS
========================================================= */

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) readLine(prompt string) (string, error) {
	a.printf("%s", prompt)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readChoice re-prompts until the input is a number in [1, max], or empty
// when allowEmpty is set (returns 0).
func (a *App) readChoice(prompt string, max int, allowEmpty bool) (int, error) {
	for {
		raw, err := a.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if raw == "" && allowEmpty {
			return 0, nil
		}
		n, convErr := strconv.Atoi(raw)
		if convErr == nil && n >= 1 && n <= max {
			return n, nil
		}
		a.printf("Please enter a number between 1 and %d.\n", max)
	}
}
