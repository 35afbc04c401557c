// file: internals/features/university/lessons/controller/lesson_controller.go
package controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"universityku_backend/internals/configs"
	d "universityku_backend/internals/features/university/lessons/dto"
	svc "universityku_backend/internals/features/university/lessons/service"
	helper "universityku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type LessonController struct {
	Service  *svc.LessonService
	Validate *validator.Validate
}

func NewLessonController(service *svc.LessonService, v *validator.Validate) *LessonController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &LessonController{Service: service, Validate: v}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

// writeScheduleError memetakan error domain ke status HTTP;
// selain itu dianggap kegagalan store → 500, log sekali, tanpa retry.
func writeScheduleError(c *fiber.Ctx, op string, err error) error {
	var serr *svc.ScheduleError
	if errors.As(err, &serr) {
		return helper.JsonError(c, serr.HTTPStatus(), serr.Message)
	}
	log.Printf("[Lesson.%s] store error: %v", op, err)
	return helper.JsonError(c, http.StatusInternalServerError, "internal error")
}

func parseLessonID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params("id")))
}

/* =========================
   POST /lessons
   ========================= */

func (ctl *LessonController) Create(c *fiber.Ctx) error {
	var req d.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFields(err))
	}

	lesson, err := ctl.Service.AddLesson(reqCtx(c), req)
	if err != nil {
		return writeScheduleError(c, "Create", err)
	}
	return helper.JsonCreated(c, "Lesson berhasil dijadwalkan", d.ToLessonResponse(lesson, configs.AppLocation))
}

/* =========================
   PUT /lessons/:id
   ========================= */

func (ctl *LessonController) Update(c *fiber.Ctx) error {
	id, err := parseLessonID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "lesson id tidak valid")
	}

	var req d.UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationFields(err))
	}

	lesson, err := ctl.Service.EditLesson(reqCtx(c), id, req)
	if err != nil {
		return writeScheduleError(c, "Update", err)
	}
	return helper.JsonUpdated(c, "Lesson berhasil diubah", d.ToLessonResponse(lesson, configs.AppLocation))
}

/* =========================
   DELETE /lessons/:id — idempotent
   ========================= */

func (ctl *LessonController) Delete(c *fiber.Ctx) error {
	id, err := parseLessonID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "lesson id tidak valid")
	}

	if err := ctl.Service.DeleteLesson(reqCtx(c), id); err != nil {
		return writeScheduleError(c, "Delete", err)
	}
	return helper.JsonDeleted(c, "Lesson dihapus", fiber.Map{"lesson_id": id})
}
