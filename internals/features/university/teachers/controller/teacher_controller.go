// file: internals/features/university/teachers/controller/teacher_controller.go
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

	d "universityku_backend/internals/features/university/teachers/dto"
	m "universityku_backend/internals/features/university/teachers/model"
	helper "universityku_backend/internals/helpers"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB, v *validator.Validate) *TeacherController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &TeacherController{DB: db, Validate: v}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

func (ctl *TeacherController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(reqCtx(c)).Model(&m.TeacherModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		s := "%" + strings.ToLower(q) + "%"
		db = db.Where("LOWER(teacher_last_name) LIKE ? OR LOWER(teacher_email) LIKE ?", s, s)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.TeacherModel
	if err := db.Order("teacher_last_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonList(c, "OK", d.ToTeacherResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows)))
}

func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "teacher id tidak valid")
	}

	var row m.TeacherModel
	if err := ctl.DB.WithContext(reqCtx(c)).First(&row, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", d.ToTeacherResponse(&row))
}

func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req d.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFields(err))
	}

	var row m.TeacherModel
	req.ApplyToModel(&row)
	if err := ctl.DB.WithContext(reqCtx(c)).Create(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Teacher dibuat", d.ToTeacherResponse(&row))
}

func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "teacher id tidak valid")
	}

	var req d.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFields(err))
	}

	var row m.TeacherModel
	if err := ctl.DB.WithContext(reqCtx(c)).First(&row, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	req.ApplyToModel(&row)
	if err := ctl.DB.WithContext(reqCtx(c)).Save(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Teacher diubah", d.ToTeacherResponse(&row))
}

func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "teacher id tidak valid")
	}

	if err := ctl.DB.WithContext(reqCtx(c)).Delete(&m.TeacherModel{}, "teacher_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Teacher dihapus", fiber.Map{"teacher_id": id})
}
