// file: internals/features/university/classrooms/controller/classroom_controller.go
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

	d "universityku_backend/internals/features/university/classrooms/dto"
	m "universityku_backend/internals/features/university/classrooms/model"
	helper "universityku_backend/internals/helpers"
)

type ClassroomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassroomController(db *gorm.DB, v *validator.Validate) *ClassroomController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &ClassroomController{DB: db, Validate: v}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

func (ctl *ClassroomController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(reqCtx(c)).Model(&m.ClassroomModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		db = db.Where("LOWER(classroom_address) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.ClassroomModel
	if err := db.Order("classroom_number ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonList(c, "OK", d.ToClassroomResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows)))
}

func (ctl *ClassroomController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "classroom id tidak valid")
	}

	var row m.ClassroomModel
	if err := ctl.DB.WithContext(reqCtx(c)).First(&row, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Classroom tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", d.ToClassroomResponse(&row))
}

func (ctl *ClassroomController) Create(c *fiber.Ctx) error {
	var req d.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFields(err))
	}

	var row m.ClassroomModel
	req.ApplyToModel(&row)
	if err := ctl.DB.WithContext(reqCtx(c)).Create(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Classroom dibuat", d.ToClassroomResponse(&row))
}

func (ctl *ClassroomController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "classroom id tidak valid")
	}

	var req d.UpdateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFields(err))
	}

	var row m.ClassroomModel
	if err := ctl.DB.WithContext(reqCtx(c)).First(&row, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Classroom tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	req.ApplyToModel(&row)
	if err := ctl.DB.WithContext(reqCtx(c)).Save(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Classroom diubah", d.ToClassroomResponse(&row))
}

func (ctl *ClassroomController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "classroom id tidak valid")
	}

	if err := ctl.DB.WithContext(reqCtx(c)).Delete(&m.ClassroomModel{}, "classroom_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Classroom dihapus", fiber.Map{"classroom_id": id})
}
