package model

// QuestionModel maps one row of a per-course question table. Every course
// shares the same canonical columns; the table itself is chosen per query, so
// there is no fixed TableName here.
type QuestionModel struct {
	QuestionID      int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	QuestionText    string `gorm:"column:question;type:text;not null" json:"question"`
	QuestionOptionA string `gorm:"column:option_a;type:text;not null" json:"option_a"`
	QuestionOptionB string `gorm:"column:option_b;type:text;not null" json:"option_b"`
	QuestionOptionC string `gorm:"column:option_c;type:text;not null" json:"option_c"`
	QuestionOptionD string `gorm:"column:option_d;type:text;not null" json:"option_d"`
	QuestionCorrect string `gorm:"column:correct_answer;type:text;not null" json:"correct_answer"` // letter A-D (legacy rows may hold full option text)
}

// Options returns the four option texts in A-D order.
func (q QuestionModel) Options() []string {
	return []string{q.QuestionOptionA, q.QuestionOptionB, q.QuestionOptionC, q.QuestionOptionD}
}
