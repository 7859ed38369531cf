package cli

// Screen tags every screen of the terminal UI. Navigation goes through an
// explicit transition in each handler; there is no string-keyed lookup.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenCourseSelect
	ScreenQuiz
	ScreenResults
	ScreenAdminLogin
	ScreenAdminMenu
	ScreenAdminAddCourse
	ScreenAdminQuestions
	ScreenExit
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenCourseSelect:
		return "course_select"
	case ScreenQuiz:
		return "quiz"
	case ScreenResults:
		return "results"
	case ScreenAdminLogin:
		return "admin_login"
	case ScreenAdminMenu:
		return "admin_menu"
	case ScreenAdminAddCourse:
		return "admin_add_course"
	case ScreenAdminQuestions:
		return "admin_questions"
	case ScreenExit:
		return "exit"
	}
	return "unknown"
}
