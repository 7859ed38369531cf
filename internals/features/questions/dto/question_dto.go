package dto

import (
	"strings"

	"quizbowl_backend/internals/features/questions/model"
)

// ============================
// Response DTO
// ============================

type QuestionDTO struct {
	QuestionID      int64  `json:"id"`
	QuestionText    string `json:"question"`
	QuestionOptionA string `json:"option_a"`
	QuestionOptionB string `json:"option_b"`
	QuestionOptionC string `json:"option_c"`
	QuestionOptionD string `json:"option_d"`
	QuestionCorrect string `json:"correct_answer"`
}

// ============================
// Create / Update Request DTO
// ============================

// Every field is required: a question with a blank option cannot be rendered
// as a four-choice prompt. The correct-answer indicator is stored as a
// letter, the canonical encoding.
type CreateQuestionRequest struct {
	QuestionText    string `json:"question" validate:"required"`
	QuestionOptionA string `json:"option_a" validate:"required"`
	QuestionOptionB string `json:"option_b" validate:"required"`
	QuestionOptionC string `json:"option_c" validate:"required"`
	QuestionOptionD string `json:"option_d" validate:"required"`
	QuestionCorrect string `json:"correct_answer" validate:"required,oneof=A B C D"`
}

// UpdateQuestionRequest replaces every column of an existing row; partial
// updates are not offered by the editor.
type UpdateQuestionRequest struct {
	QuestionText    string `json:"question" validate:"required"`
	QuestionOptionA string `json:"option_a" validate:"required"`
	QuestionOptionB string `json:"option_b" validate:"required"`
	QuestionOptionC string `json:"option_c" validate:"required"`
	QuestionOptionD string `json:"option_d" validate:"required"`
	QuestionCorrect string `json:"correct_answer" validate:"required,oneof=A B C D"`
}

// Normalize trims surrounding whitespace and upper-cases the indicator so
// "b " validates and stores as "B".
func (r *CreateQuestionRequest) Normalize() {
	r.QuestionText = strings.TrimSpace(r.QuestionText)
	r.QuestionOptionA = strings.TrimSpace(r.QuestionOptionA)
	r.QuestionOptionB = strings.TrimSpace(r.QuestionOptionB)
	r.QuestionOptionC = strings.TrimSpace(r.QuestionOptionC)
	r.QuestionOptionD = strings.TrimSpace(r.QuestionOptionD)
	r.QuestionCorrect = strings.ToUpper(strings.TrimSpace(r.QuestionCorrect))
}

func (r *UpdateQuestionRequest) Normalize() {
	r.QuestionText = strings.TrimSpace(r.QuestionText)
	r.QuestionOptionA = strings.TrimSpace(r.QuestionOptionA)
	r.QuestionOptionB = strings.TrimSpace(r.QuestionOptionB)
	r.QuestionOptionC = strings.TrimSpace(r.QuestionOptionC)
	r.QuestionOptionD = strings.TrimSpace(r.QuestionOptionD)
	r.QuestionCorrect = strings.ToUpper(strings.TrimSpace(r.QuestionCorrect))
}

// ============================
// Converter
// ============================

func ToQuestionDTO(m model.QuestionModel) QuestionDTO {
	return QuestionDTO{
		QuestionID:      m.QuestionID,
		QuestionText:    m.QuestionText,
		QuestionOptionA: m.QuestionOptionA,
		QuestionOptionB: m.QuestionOptionB,
		QuestionOptionC: m.QuestionOptionC,
		QuestionOptionD: m.QuestionOptionD,
		QuestionCorrect: m.QuestionCorrect,
	}
}

func (r CreateQuestionRequest) ToModel() model.QuestionModel {
	return model.QuestionModel{
		QuestionText:    r.QuestionText,
		QuestionOptionA: r.QuestionOptionA,
		QuestionOptionB: r.QuestionOptionB,
		QuestionOptionC: r.QuestionOptionC,
		QuestionOptionD: r.QuestionOptionD,
		QuestionCorrect: r.QuestionCorrect,
	}
}
