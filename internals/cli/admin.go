package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"quizbowl_backend/internals/configs"
	coursedto "quizbowl_backend/internals/features/courses/dto"
	courseservice "quizbowl_backend/internals/features/courses/service"
	questiondto "quizbowl_backend/internals/features/questions/dto"
	questionservice "quizbowl_backend/internals/features/questions/service"
	"quizbowl_backend/internals/helpers"
)

func (a *App) adminLoginScreen() (Screen, error) {
	if configs.AdminPassword == "" && configs.AdminPasswordBcrypt == "" {
		a.printf("The admin path is disabled: no admin credential is configured.\n")
		return ScreenLogin, nil
	}

	input, err := a.readLine("Admin password: ")
	if err != nil {
		return ScreenExit, err
	}
	if !helpers.CheckSharedSecret(input, configs.AdminPassword, configs.AdminPasswordBcrypt) {
		a.printf("Wrong password.\n")
		return ScreenLogin, nil
	}
	return ScreenAdminMenu, nil
}

func (a *App) adminMenuScreen() (Screen, error) {
	a.printf("\n---- Admin ----\n")
	a.printf("  1) List courses\n")
	a.printf("  2) Add course\n")
	a.printf("  3) Edit questions\n")
	a.printf("  4) Back\n")

	choice, err := a.readChoice("Select: ", 4, false)
	if err != nil {
		return ScreenExit, err
	}
	switch choice {
	case 1:
		a.listCoursesWithCounts()
		return ScreenAdminMenu, nil
	case 2:
		return ScreenAdminAddCourse, nil
	case 3:
		course, pickErr := a.pickCourse()
		if pickErr != nil {
			return ScreenExit, pickErr
		}
		if course == "" {
			return ScreenAdminMenu, nil
		}
		a.adminCourse = course
		return ScreenAdminQuestions, nil
	}
	return ScreenLogin, nil
}

func (a *App) adminAddCourseScreen() (Screen, error) {
	name, err := a.readLine("New course name (letters, digits, spaces, underscores): ")
	if err != nil {
		return ScreenExit, err
	}
	if name == "" {
		return ScreenAdminMenu, nil
	}

	createErr := a.Courses.CreateCourse(context.Background(), coursedto.CreateCourseRequest{CourseName: name})
	switch {
	case createErr == nil:
		a.printf("Course %q created.\n", name)
	case errors.Is(createErr, courseservice.ErrCourseAlreadyExists):
		a.printf("A course named %q already exists.\n", name)
	case errors.Is(createErr, helpers.ErrInvalidCourseName):
		a.printf("That name is not allowed: %v\n", createErr)
	default:
		a.printf("Could not create the course: %v\n", createErr)
	}
	return ScreenAdminMenu, nil
}

func (a *App) adminQuestionsScreen() (Screen, error) {
	course := a.adminCourse
	questions, err := a.Questions.ListAllQuestions(context.Background(), course)
	if err != nil {
		a.printf("Could not load questions for %q: %v\n", course, err)
		return ScreenAdminMenu, nil
	}

	a.printf("\n---- %s (%d questions) ----\n", strings.ToUpper(course), len(questions))
	for _, q := range questions {
		a.printf("  #%d [%s] %s\n", q.QuestionID, q.QuestionCorrect, truncate(q.QuestionText, 70))
	}
	a.printf("  a) Add question   e) Edit question   d) Delete question   b) Back\n")

	action, err := a.readLine("Select: ")
	if err != nil {
		return ScreenExit, err
	}
	switch strings.ToLower(action) {
	case "a":
		return a.addQuestion(course)
	case "e":
		return a.editQuestion(course)
	case "d":
		return a.deleteQuestion(course)
	case "b":
		a.adminCourse = ""
		return ScreenAdminMenu, nil
	}
	return ScreenAdminQuestions, nil
}

/* =========================================================
   QUESTION EDITOR ACTIONS
========================================================= */

func (a *App) addQuestion(course string) (Screen, error) {
	req := questiondto.CreateQuestionRequest{}
	fields := []struct {
		label string
		dst   *string
	}{
		{"Question", &req.QuestionText},
		{"Option A", &req.QuestionOptionA},
		{"Option B", &req.QuestionOptionB},
		{"Option C", &req.QuestionOptionC},
		{"Option D", &req.QuestionOptionD},
		{"Correct answer (A-D)", &req.QuestionCorrect},
	}
	for _, f := range fields {
		value, err := a.readLine(f.label + ": ")
		if err != nil {
			return ScreenExit, err
		}
		*f.dst = value
	}

	created, err := a.Questions.InsertQuestion(context.Background(), course, req)
	switch {
	case err == nil:
		a.printf("Question #%d added.\n", created.QuestionID)
	case errors.Is(err, questionservice.ErrValidation):
		a.printf("Every field is required and the answer must be A-D. Nothing was saved.\n")
	default:
		a.printf("Could not add the question: %v\n", err)
	}
	return ScreenAdminQuestions, nil
}

func (a *App) editQuestion(course string) (Screen, error) {
	id, ok, err := a.readQuestionID()
	if err != nil || !ok {
		return ScreenAdminQuestions, err
	}

	current, found := a.findQuestion(course, id)
	if !found {
		a.printf("No question with id %d in %q.\n", id, course)
		return ScreenAdminQuestions, nil
	}

	a.printf("Press Enter to keep the current value.\n")
	req := questiondto.UpdateQuestionRequest{
		QuestionText:    current.QuestionText,
		QuestionOptionA: current.QuestionOptionA,
		QuestionOptionB: current.QuestionOptionB,
		QuestionOptionC: current.QuestionOptionC,
		QuestionOptionD: current.QuestionOptionD,
		QuestionCorrect: current.QuestionCorrect,
	}
	fields := []struct {
		label string
		dst   *string
	}{
		{"Question", &req.QuestionText},
		{"Option A", &req.QuestionOptionA},
		{"Option B", &req.QuestionOptionB},
		{"Option C", &req.QuestionOptionC},
		{"Option D", &req.QuestionOptionD},
		{"Correct answer (A-D)", &req.QuestionCorrect},
	}
	for _, f := range fields {
		value, readErr := a.readLine(f.label + " [" + truncate(*f.dst, 40) + "]: ")
		if readErr != nil {
			return ScreenExit, readErr
		}
		if value != "" {
			*f.dst = value
		}
	}

	updateErr := a.Questions.UpdateQuestion(context.Background(), course, id, req)
	switch {
	case updateErr == nil:
		a.printf("Question #%d updated.\n", id)
	case errors.Is(updateErr, questionservice.ErrValidation):
		a.printf("Every field is required and the answer must be A-D. Nothing was saved.\n")
	case errors.Is(updateErr, questionservice.ErrQuestionNotFound):
		a.printf("No question with id %d in %q.\n", id, course)
	default:
		a.printf("Could not update the question: %v\n", updateErr)
	}
	return ScreenAdminQuestions, nil
}

func (a *App) deleteQuestion(course string) (Screen, error) {
	id, ok, err := a.readQuestionID()
	if err != nil || !ok {
		return ScreenAdminQuestions, err
	}

	confirm, err := a.readLine("Delete question #" + strconv.FormatInt(id, 10) + "? (y/n): ")
	if err != nil {
		return ScreenExit, err
	}
	if !strings.EqualFold(confirm, "y") {
		return ScreenAdminQuestions, nil
	}

	deleteErr := a.Questions.DeleteQuestion(context.Background(), course, id)
	switch {
	case deleteErr == nil:
		a.printf("Question #%d deleted.\n", id)
	case errors.Is(deleteErr, questionservice.ErrQuestionNotFound):
		a.printf("No question with id %d in %q.\n", id, course)
	default:
		a.printf("Could not delete the question: %v\n", deleteErr)
	}
	return ScreenAdminQuestions, nil
}

/* =========================================================
   SMALL HELPERS
========================================================= */

func (a *App) listCoursesWithCounts() {
	ctx := context.Background()
	courses, err := a.Courses.ListCourses(ctx)
	if err != nil {
		a.printf("Could not read the question store: %v\n", err)
		return
	}
	if len(courses) == 0 {
		a.printf("No courses found.\n")
		return
	}
	for _, c := range courses {
		count, countErr := a.Questions.CountQuestions(ctx, c.CourseName)
		if countErr != nil {
			a.printf("  %s (count unavailable: %v)\n", c.CourseName, countErr)
			continue
		}
		a.printf("  %s (%d questions)\n", c.CourseName, count)
	}
}

// pickCourse lets the admin choose any discovered course; "" means back.
func (a *App) pickCourse() (string, error) {
	courses, err := a.Courses.ListCourses(context.Background())
	if err != nil {
		a.printf("Could not read the question store: %v\n", err)
		return "", nil
	}
	if len(courses) == 0 {
		a.printf("No courses found. Add one first.\n")
		return "", nil
	}

	a.printf("\n---- Courses ----\n")
	for i, c := range courses {
		a.printf("  %d) %s\n", i+1, c.CourseName)
	}
	a.printf("  %d) Back\n", len(courses)+1)

	choice, err := a.readChoice("Select: ", len(courses)+1, false)
	if err != nil {
		return "", err
	}
	if choice == len(courses)+1 {
		return "", nil
	}
	return courses[choice-1].CourseName, nil
}

func (a *App) readQuestionID() (int64, bool, error) {
	raw, err := a.readLine("Question id: ")
	if err != nil {
		return 0, false, err
	}
	id, convErr := strconv.ParseInt(raw, 10, 64)
	if convErr != nil || id <= 0 {
		a.printf("That is not a valid question id.\n")
		return 0, false, nil
	}
	return id, true, nil
}

func (a *App) findQuestion(course string, id int64) (questiondto.QuestionDTO, bool) {
	questions, err := a.Questions.ListAllQuestions(context.Background(), course)
	if err != nil {
		return questiondto.QuestionDTO{}, false
	}
	for _, q := range questions {
		if q.QuestionID == id {
			return q, true
		}
	}
	return questiondto.QuestionDTO{}, false
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
