package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	coursedto "quizbowl_backend/internals/features/courses/dto"
	courseservice "quizbowl_backend/internals/features/courses/service"
	questiondto "quizbowl_backend/internals/features/questions/dto"
	questionservice "quizbowl_backend/internals/features/questions/service"
)

type QuestionSeed struct {
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
}

type CourseSeed struct {
	CourseName string         `json:"course_name"`
	Questions  []QuestionSeed `json:"questions"`
}

// SeedCourseQuestionsFromJSON creates the seed courses and fills them with
// their question bank. A course that already holds questions is left alone,
// so re-running the seeder is safe.
func SeedCourseQuestionsFromJSON(db *gorm.DB, filePath string) error {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read seed file %q: %w", filePath, err)
	}

	var seeds []CourseSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		return fmt.Errorf("decode seed file %q: %w", filePath, err)
	}

	ctx := context.Background()
	courseSvc := courseservice.NewCourseService(db)
	questionSvc := questionservice.NewQuestionService(db)

	for _, seed := range seeds {
		exists, err := courseSvc.CourseExists(ctx, seed.CourseName)
		if err != nil {
			return err
		}
		if !exists {
			if err := courseSvc.CreateCourse(ctx, coursedto.CreateCourseRequest{CourseName: seed.CourseName}); err != nil {
				return err
			}
		}

		count, err := questionSvc.CountQuestions(ctx, seed.CourseName)
		if err != nil {
			return err
		}
		if count > 0 {
			log.Printf("[Seeder] course %q already has %d questions, skipped", seed.CourseName, count)
			continue
		}

		for _, q := range seed.Questions {
			_, err := questionSvc.InsertQuestion(ctx, seed.CourseName, questiondto.CreateQuestionRequest{
				QuestionText:    q.Question,
				QuestionOptionA: q.OptionA,
				QuestionOptionB: q.OptionB,
				QuestionOptionC: q.OptionC,
				QuestionOptionD: q.OptionD,
				QuestionCorrect: q.CorrectAnswer,
			})
			if err != nil {
				return fmt.Errorf("seed course %q: %w", seed.CourseName, err)
			}
		}
		log.Printf("[Seeder] course %q seeded with %d questions", seed.CourseName, len(seed.Questions))
	}
	return nil
}
