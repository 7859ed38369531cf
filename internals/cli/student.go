package cli

import (
	"context"
	"errors"
	"strings"

	"quizbowl_backend/internals/configs"
	"quizbowl_backend/internals/constants"
	attemptservice "quizbowl_backend/internals/features/attempts/service"
)

func (a *App) loginScreen() (Screen, error) {
	a.printf("\n==== Quiz Bowl ====\n")
	a.printf("  1) Take a quiz\n")
	a.printf("  2) Admin\n")
	a.printf("  3) Exit\n")

	choice, err := a.readChoice("Select: ", 3, false)
	if err != nil {
		return ScreenExit, err
	}
	switch choice {
	case 1:
		return ScreenCourseSelect, nil
	case 2:
		return ScreenAdminLogin, nil
	}
	return ScreenExit, nil
}

func (a *App) courseSelectScreen() (Screen, error) {
	courses, err := a.Courses.ListCourses(context.Background())
	if err != nil {
		a.printf("Could not read the question store: %v\nReturning to the menu.\n", err)
		return ScreenLogin, nil
	}

	// Apply the configured allow-list before offering anything.
	var names []string
	for _, c := range courses {
		if allowedCourse(c.CourseName) {
			names = append(names, c.CourseName)
		}
	}
	if len(names) == 0 {
		a.printf("No quiz categories are available.\n")
		return ScreenLogin, nil
	}

	a.printf("\n---- Select a Quiz Category ----\n")
	for i, name := range names {
		a.printf("  %d) %s\n", i+1, strings.ToUpper(name))
	}
	a.printf("  %d) Back\n", len(names)+1)

	choice, err := a.readChoice("Select: ", len(names)+1, false)
	if err != nil {
		return ScreenExit, err
	}
	if choice == len(names)+1 {
		return ScreenLogin, nil
	}
	course := names[choice-1]

	attempt, partial, err := attemptservice.StartQuizAttempt(context.Background(), a.Questions, course, attemptservice.AttemptOptions{
		SampleSize:     configs.SampleSize,
		ShuffleOptions: configs.ShuffleOptions,
	})
	if err != nil {
		switch {
		case errors.Is(err, attemptservice.ErrNoQuestions):
			a.printf("The %q quiz has no questions yet. Please pick another.\n", course)
		case errors.Is(err, attemptservice.ErrDataIntegrity):
			a.printf("The %q quiz has a broken question and cannot be taken: %v\n", course, err)
		default:
			a.printf("Could not start the quiz: %v\n", err)
		}
		return ScreenCourseSelect, nil
	}

	if partial != nil {
		a.printf("Note: %q has only %d questions; the quiz will run with %d instead of %d.\n",
			course, partial.Returned, partial.Returned, partial.Requested)
	}
	a.attempt = attempt
	a.partial = partial
	return ScreenQuiz, nil
}

func (a *App) quizScreen() (Screen, error) {
	for a.attempt.State() == attemptservice.AttemptStateInProgress {
		q, err := a.attempt.CurrentQuestion()
		if err != nil {
			a.printf("Quiz stopped: %v\n", err)
			a.attempt = nil
			return ScreenCourseSelect, nil
		}

		a.printf("\nQuestion %d/%d\n%s\n", q.Number, q.Total, q.Text)
		for i, opt := range q.Options {
			a.printf("  %s) %s\n", constants.OptionLetters[i], opt)
		}

		result, err := a.submitWithReprompt(q.Options)
		if err != nil {
			return ScreenExit, err
		}

		if result.Correct {
			a.printf("Correct!\n")
		} else {
			a.printf("Incorrect. The correct answer was: %s\n", result.CorrectAnswer)
		}

		if _, err := a.readLine("Press Enter to continue..."); err != nil {
			return ScreenExit, err
		}
		if err := a.attempt.Advance(); err != nil {
			if errors.Is(err, attemptservice.ErrDataIntegrity) {
				a.printf("A question in this quiz is broken, the attempt was stopped: %v\n", err)
				a.attempt = nil
				return ScreenCourseSelect, nil
			}
			return ScreenExit, err
		}
	}
	return ScreenResults, nil
}

// submitWithReprompt keeps asking until a letter is chosen; an empty answer
// is recoverable (NoSelection) and never scored.
func (a *App) submitWithReprompt(options []string) (attemptservice.SubmitResult, error) {
	for {
		raw, err := a.readLine("Your answer (A-D): ")
		if err != nil {
			return attemptservice.SubmitResult{}, err
		}

		choice := ""
		if idx := letterIndex(raw); idx >= 0 {
			choice = options[idx]
		}

		result, submitErr := a.attempt.SubmitAnswer(choice)
		if submitErr != nil {
			if errors.Is(submitErr, attemptservice.ErrNoSelection) {
				a.printf("Please select an answer (A, B, C or D).\n")
				continue
			}
			return attemptservice.SubmitResult{}, submitErr
		}
		return result, nil
	}
}

func (a *App) resultsScreen() (Screen, error) {
	summary, err := a.attempt.Summary()
	partial := a.partial
	a.attempt = nil
	a.partial = nil
	if err != nil {
		a.printf("Could not read the quiz result: %v\n", err)
		return ScreenCourseSelect, nil
	}

	a.printf("\n==== Quiz Complete! ====\n")
	a.printf("You scored %d out of %d.\n", summary.Score, summary.Total)
	a.printf("Your final score is: %.1f / 10\n", summary.Scale)
	if partial != nil {
		a.printf("(This quiz ran with %d questions instead of the usual %d.)\n",
			partial.Returned, partial.Requested)
	}
	a.printf("  1) Take another quiz\n")
	a.printf("  2) Main menu\n")

	choice, err := a.readChoice("Select: ", 2, false)
	if err != nil {
		return ScreenExit, err
	}
	if choice == 1 {
		return ScreenCourseSelect, nil
	}
	return ScreenLogin, nil
}

func letterIndex(raw string) int {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	for i, letter := range constants.OptionLetters {
		if raw == letter {
			return i
		}
	}
	return -1
}

func allowedCourse(name string) bool {
	if len(configs.CourseAllowlist) == 0 {
		return true
	}
	for _, allowed := range configs.CourseAllowlist {
		if strings.EqualFold(allowed, name) {
			return true
		}
	}
	return false
}
