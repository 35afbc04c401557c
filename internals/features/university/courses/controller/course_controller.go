// file: internals/features/university/courses/controller/course_controller.go
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

	d "universityku_backend/internals/features/university/courses/dto"
	m "universityku_backend/internals/features/university/courses/model"
	helper "universityku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB, v *validator.Validate) *CourseController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &CourseController{DB: db, Validate: v}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

/* =========================
   List / Get / Create / Update / Delete
   ========================= */

func (ctl *CourseController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(reqCtx(c)).Model(&m.CourseModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		db = db.Where("LOWER(course_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.CourseModel
	if err := db.Order("course_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonList(c, "OK", d.ToCourseResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows)))
}

func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "course id tidak valid")
	}

	var row m.CourseModel
	if err := ctl.DB.WithContext(reqCtx(c)).First(&row, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", d.ToCourseResponse(&row))
}

func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req d.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFields(err))
	}

	var row m.CourseModel
	req.ApplyToModel(&row)
	if err := ctl.DB.WithContext(reqCtx(c)).Create(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Course dibuat", d.ToCourseResponse(&row))
}

func (ctl *CourseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "course id tidak valid")
	}

	var req d.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFields(err))
	}

	var row m.CourseModel
	if err := ctl.DB.WithContext(reqCtx(c)).First(&row, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	req.ApplyToModel(&row)
	if err := ctl.DB.WithContext(reqCtx(c)).Save(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Course diubah", d.ToCourseResponse(&row))
}

func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "course id tidak valid")
	}

	if err := ctl.DB.WithContext(reqCtx(c)).Delete(&m.CourseModel{}, "course_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Course dihapus", fiber.Map{"course_id": id})
}
