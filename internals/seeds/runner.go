package seeds

import (
	"gorm.io/gorm"

	questions "quizbowl_backend/internals/seeds/questions"
)

func RunAllSeeds(db *gorm.DB, seedFile string) error {
	return questions.SeedCourseQuestionsFromJSON(db, seedFile)
}
