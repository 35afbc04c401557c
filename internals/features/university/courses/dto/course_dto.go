// file: internals/features/university/courses/dto/course_dto.go
package dto

import (
	"strings"

	m "universityku_backend/internals/features/university/courses/model"
)

type CreateCourseRequest struct {
	CourseName string `json:"course_name" validate:"required,min=2,max=100"`
}

type UpdateCourseRequest = CreateCourseRequest

type CourseResponse struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
}

func (r *CreateCourseRequest) ApplyToModel(dst *m.CourseModel) {
	dst.CourseName = strings.TrimSpace(r.CourseName)
}

func ToCourseResponse(c *m.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:   c.CourseID.String(),
		CourseName: c.CourseName,
	}
}

func ToCourseResponses(cs []m.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(cs))
	for i := range cs {
		out = append(out, ToCourseResponse(&cs[i]))
	}
	return out
}
