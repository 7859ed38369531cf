package dto

// ============================
// Response DTO
// ============================

type CourseDTO struct {
	CourseName string `json:"course_name"`
}

// ============================
// Create Request DTO
// ============================

type CreateCourseRequest struct {
	CourseName string `json:"course_name" validate:"required"`
}
