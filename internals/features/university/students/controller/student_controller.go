// file: internals/features/university/students/controller/student_controller.go
package controller

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupRepo "universityku_backend/internals/features/university/groups/repository"
	d "universityku_backend/internals/features/university/students/dto"
	m "universityku_backend/internals/features/university/students/model"
	helper "universityku_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &StudentController{DB: db, Validate: v}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

func parseStudentID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params("id")))
}

func (ctl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(reqCtx(c)).Model(&m.StudentModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		s := "%" + strings.ToLower(q) + "%"
		db = db.Where("LOWER(student_last_name) LIKE ? OR LOWER(student_email) LIKE ?", s, s)
	}
	if gid := strings.TrimSpace(c.Query("group_id")); gid != "" {
		if _, err := uuid.Parse(gid); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "group_id tidak valid")
		}
		db = db.Where("student_group_id = ?", gid)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.StudentModel
	if err := db.Order("student_last_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonList(c, "OK", d.ToStudentResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows)))
}

func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := parseStudentID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "student id tidak valid")
	}

	var row m.StudentModel
	if err := ctl.DB.WithContext(reqCtx(c)).First(&row, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", d.ToStudentResponse(&row))
}

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req d.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFields(err))
	}

	var row m.StudentModel
	req.ApplyToModel(&row)
	if err := ctl.DB.WithContext(reqCtx(c)).Create(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Student dibuat", d.ToStudentResponse(&row))
}

func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := parseStudentID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "student id tidak valid")
	}

	var req d.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFields(err))
	}

	var row m.StudentModel
	if err := ctl.DB.WithContext(reqCtx(c)).First(&row, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	req.ApplyToModel(&row)
	if err := ctl.DB.WithContext(reqCtx(c)).Save(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Student diubah", d.ToStudentResponse(&row))
}

// AssignGroup memindahkan student ke group lain (by nama) atau
// mengeluarkannya (group_name null). Enrolment mengubah ukuran group,
// jadi cek kapasitas lesson selalu pakai COUNT terkini saat booking.
func (ctl *StudentController) AssignGroup(c *fiber.Ctx) error {
	id, err := parseStudentID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "student id tidak valid")
	}

	var req d.AssignGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFields(err))
	}

	ctx := reqCtx(c)

	var row m.StudentModel
	if err := ctl.DB.WithContext(ctx).First(&row, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	if req.GroupName == nil || strings.TrimSpace(*req.GroupName) == "" {
		row.StudentGroupID = nil
	} else {
		group, err := groupRepo.NewGroupRepository(ctl.DB).FindByName(ctx, strings.TrimSpace(*req.GroupName))
		if err != nil {
			return helper.WritePGError(c, err)
		}
		if group == nil {
			return helper.JsonError(c, http.StatusNotFound, "Group tidak ditemukan")
		}
		row.StudentGroupID = &group.GroupID
	}

	if err := ctl.DB.WithContext(ctx).Save(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Group student diubah", d.ToStudentResponse(&row))
}

func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := parseStudentID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "student id tidak valid")
	}

	if err := ctl.DB.WithContext(reqCtx(c)).Delete(&m.StudentModel{}, "student_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Student dihapus", fiber.Map{"student_id": id})
}
