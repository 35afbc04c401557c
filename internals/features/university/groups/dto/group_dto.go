// file: internals/features/university/groups/dto/group_dto.go
package dto

import (
	"strings"

	m "universityku_backend/internals/features/university/groups/model"
	studentDTO "universityku_backend/internals/features/university/students/dto"
)

type CreateGroupRequest struct {
	GroupName string `json:"group_name" validate:"required,group_name"`
}

type GroupResponse struct {
	GroupID      string                       `json:"group_id"`
	GroupName    string                       `json:"group_name"`
	StudentCount int                          `json:"student_count"`
	Students     []studentDTO.StudentResponse `json:"students,omitempty"`
}

func (r *CreateGroupRequest) ApplyToModel(dst *m.GroupModel) {
	dst.GroupName = strings.TrimSpace(r.GroupName)
}

func ToGroupResponse(g *m.GroupModel, withStudents bool) GroupResponse {
	resp := GroupResponse{
		GroupID:      g.GroupID.String(),
		GroupName:    g.GroupName,
		StudentCount: len(g.Students),
	}
	if withStudents {
		resp.Students = studentDTO.ToStudentResponses(g.Students)
	}
	return resp
}

func ToGroupResponses(gs []m.GroupModel, withStudents bool) []GroupResponse {
	out := make([]GroupResponse, 0, len(gs))
	for i := range gs {
		out = append(out, ToGroupResponse(&gs[i], withStudents))
	}
	return out
}
