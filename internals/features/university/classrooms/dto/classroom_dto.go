// file: internals/features/university/classrooms/dto/classroom_dto.go
package dto

import (
	"strings"

	"gorm.io/datatypes"

	m "universityku_backend/internals/features/university/classrooms/model"
)

type CreateClassroomRequest struct {
	ClassroomNumber     int            `json:"classroom_number" validate:"required,gt=0"`
	ClassroomAddress    string         `json:"classroom_address" validate:"required,min=5,max=100"`
	ClassroomCapacity   int            `json:"classroom_capacity" validate:"required,gt=0"`
	ClassroomFacilities datatypes.JSON `json:"classroom_facilities,omitempty"`
}

type UpdateClassroomRequest = CreateClassroomRequest

type ClassroomResponse struct {
	ClassroomID         string         `json:"classroom_id"`
	ClassroomNumber     int            `json:"classroom_number"`
	ClassroomAddress    string         `json:"classroom_address"`
	ClassroomCapacity   int            `json:"classroom_capacity"`
	ClassroomFacilities datatypes.JSON `json:"classroom_facilities,omitempty"`
}

func (r *CreateClassroomRequest) ApplyToModel(dst *m.ClassroomModel) {
	dst.ClassroomNumber = r.ClassroomNumber
	dst.ClassroomAddress = strings.TrimSpace(r.ClassroomAddress)
	dst.ClassroomCapacity = r.ClassroomCapacity
	dst.ClassroomFacilities = r.ClassroomFacilities
}

func ToClassroomResponse(cr *m.ClassroomModel) ClassroomResponse {
	return ClassroomResponse{
		ClassroomID:         cr.ClassroomID.String(),
		ClassroomNumber:     cr.ClassroomNumber,
		ClassroomAddress:    cr.ClassroomAddress,
		ClassroomCapacity:   cr.ClassroomCapacity,
		ClassroomFacilities: cr.ClassroomFacilities,
	}
}

func ToClassroomResponses(crs []m.ClassroomModel) []ClassroomResponse {
	out := make([]ClassroomResponse, 0, len(crs))
	for i := range crs {
		out = append(out, ToClassroomResponse(&crs[i]))
	}
	return out
}
