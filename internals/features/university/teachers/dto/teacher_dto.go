// file: internals/features/university/teachers/dto/teacher_dto.go
package dto

import (
	"strings"

	m "universityku_backend/internals/features/university/teachers/model"
)

type CreateTeacherRequest struct {
	TeacherFirstName string `json:"teacher_first_name" validate:"required,min=1,max=100"`
	TeacherLastName  string `json:"teacher_last_name"  validate:"required,min=1,max=100"`
	TeacherEmail     string `json:"teacher_email"      validate:"required,email"`
}

type UpdateTeacherRequest = CreateTeacherRequest

type TeacherResponse struct {
	TeacherID        string `json:"teacher_id"`
	TeacherFirstName string `json:"teacher_first_name"`
	TeacherLastName  string `json:"teacher_last_name"`
	TeacherEmail     string `json:"teacher_email"`
}

func (r *CreateTeacherRequest) ApplyToModel(dst *m.TeacherModel) {
	dst.TeacherFirstName = strings.TrimSpace(r.TeacherFirstName)
	dst.TeacherLastName = strings.TrimSpace(r.TeacherLastName)
	dst.TeacherEmail = strings.TrimSpace(r.TeacherEmail)
}

func ToTeacherResponse(t *m.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:        t.TeacherID.String(),
		TeacherFirstName: t.TeacherFirstName,
		TeacherLastName:  t.TeacherLastName,
		TeacherEmail:     t.TeacherEmail,
	}
}

func ToTeacherResponses(ts []m.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(ts))
	for i := range ts {
		out = append(out, ToTeacherResponse(&ts[i]))
	}
	return out
}
