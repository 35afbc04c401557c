// file: internals/features/university/groups/controller/group_controller.go
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

	d "universityku_backend/internals/features/university/groups/dto"
	m "universityku_backend/internals/features/university/groups/model"
	helper "universityku_backend/internals/helpers"
)

type GroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGroupController(db *gorm.DB, v *validator.Validate) *GroupController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &GroupController{DB: db, Validate: v}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

func (ctl *GroupController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(reqCtx(c)).Model(&m.GroupModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		db = db.Where("LOWER(group_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.GroupModel
	if err := db.Preload("Students").
		Order("group_name ASC").Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonList(c, "OK", d.ToGroupResponses(rows, false),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows)))
}

func (ctl *GroupController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "group id tidak valid")
	}

	var row m.GroupModel
	if err := ctl.DB.WithContext(reqCtx(c)).
		Preload("Students").
		First(&row, "group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Group tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", d.ToGroupResponse(&row, true))
}

func (ctl *GroupController) Create(c *fiber.Ctx) error {
	var req d.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFields(err))
	}

	var row m.GroupModel
	req.ApplyToModel(&row)
	if err := ctl.DB.WithContext(reqCtx(c)).Create(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Group dibuat", d.ToGroupResponse(&row, false))
}

// Delete soft-delete; student di dalamnya tetap ada, hanya lepas keanggotaan.
func (ctl *GroupController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "group id tidak valid")
	}

	ctx := reqCtx(c)
	err = ctl.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"UPDATE students SET student_group_id = NULL WHERE student_group_id = ?", id,
		).Error; err != nil {
			return err
		}
		return tx.Delete(&m.GroupModel{}, "group_id = ?", id).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Group dihapus", fiber.Map{"group_id": id})
}
