// file: internals/features/university/students/dto/student_dto.go
package dto

import (
	"strings"

	m "universityku_backend/internals/features/university/students/model"
)

type CreateStudentRequest struct {
	StudentFirstName string `json:"student_first_name" validate:"required,min=1,max=100"`
	StudentLastName  string `json:"student_last_name"  validate:"required,min=1,max=100"`
	StudentEmail     string `json:"student_email"      validate:"required,email"`
}

type UpdateStudentRequest = CreateStudentRequest

// Pindah/keluarkan student dari group; nama kosong = keluarkan.
type AssignGroupRequest struct {
	GroupName *string `json:"group_name,omitempty" validate:"omitempty,group_name"`
}

type StudentResponse struct {
	StudentID        string  `json:"student_id"`
	StudentFirstName string  `json:"student_first_name"`
	StudentLastName  string  `json:"student_last_name"`
	StudentEmail     string  `json:"student_email"`
	StudentGroupID   *string `json:"student_group_id,omitempty"`
}

func (r *CreateStudentRequest) ApplyToModel(dst *m.StudentModel) {
	dst.StudentFirstName = strings.TrimSpace(r.StudentFirstName)
	dst.StudentLastName = strings.TrimSpace(r.StudentLastName)
	dst.StudentEmail = strings.TrimSpace(r.StudentEmail)
}

func ToStudentResponse(s *m.StudentModel) StudentResponse {
	resp := StudentResponse{
		StudentID:        s.StudentID.String(),
		StudentFirstName: s.StudentFirstName,
		StudentLastName:  s.StudentLastName,
		StudentEmail:     s.StudentEmail,
	}
	if s.StudentGroupID != nil {
		gid := s.StudentGroupID.String()
		resp.StudentGroupID = &gid
	}
	return resp
}

func ToStudentResponses(ss []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ss))
	for i := range ss {
		out = append(out, ToStudentResponse(&ss[i]))
	}
	return out
}
