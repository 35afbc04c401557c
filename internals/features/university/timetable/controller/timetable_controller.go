// file: internals/features/university/timetable/controller/timetable_controller.go
package controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"universityku_backend/internals/configs"
	lessonDTO "universityku_backend/internals/features/university/lessons/dto"
	lessonSvc "universityku_backend/internals/features/university/lessons/service"
	svc "universityku_backend/internals/features/university/timetable/service"
	helper "universityku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type TimetableController struct {
	Service *svc.TimetableService
}

func NewTimetableController(service *svc.TimetableService) *TimetableController {
	return &TimetableController{Service: service}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

func parseDateParam(c *fiber.Ctx) (time.Time, error) {
	return lessonDTO.ParseDate(c.Params("date"), configs.AppLocation)
}

func writeTimetableError(c *fiber.Ctx, op string, err error) error {
	var serr *lessonSvc.ScheduleError
	if errors.As(err, &serr) {
		return helper.JsonError(c, serr.HTTPStatus(), serr.Message)
	}
	log.Printf("[Timetable.%s] store error: %v", op, err)
	return helper.JsonError(c, http.StatusInternalServerError, "internal error")
}

/* =========================
   GET /timetables/day/:date
   ========================= */

func (ctl *TimetableController) Day(c *fiber.Ctx) error {
	date, err := parseDateParam(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "tanggal tidak valid (YYYY-MM-DD)")
	}
	tt, err := ctl.Service.DayTimetable(reqCtx(c), date)
	if err != nil {
		return writeTimetableError(c, "Day", err)
	}
	return helper.JsonOK(c, "OK", tt)
}

/* =========================
   Teacher: day / week / month
   ========================= */

func (ctl *TimetableController) TeacherDay(c *fiber.Ctx) error {
	date, err := parseDateParam(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "tanggal tidak valid (YYYY-MM-DD)")
	}
	email := strings.TrimSpace(c.Params("email"))
	tt, err := ctl.Service.TeacherDayTimetable(reqCtx(c), date, email)
	if err != nil {
		return writeTimetableError(c, "TeacherDay", err)
	}
	return helper.JsonOK(c, "OK", tt)
}

func (ctl *TimetableController) TeacherWeek(c *fiber.Ctx) error {
	date, err := parseDateParam(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "tanggal tidak valid (YYYY-MM-DD)")
	}
	email := strings.TrimSpace(c.Params("email"))
	tts, err := ctl.Service.TeacherWeekTimetable(reqCtx(c), date, email)
	if err != nil {
		return writeTimetableError(c, "TeacherWeek", err)
	}
	return helper.JsonOK(c, "OK", tts)
}

func (ctl *TimetableController) TeacherMonth(c *fiber.Ctx) error {
	date, err := parseDateParam(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "tanggal tidak valid (YYYY-MM-DD)")
	}
	email := strings.TrimSpace(c.Params("email"))
	tts, err := ctl.Service.TeacherMonthTimetable(reqCtx(c), date, email)
	if err != nil {
		return writeTimetableError(c, "TeacherMonth", err)
	}
	return helper.JsonOK(c, "OK", tts)
}

/* =========================
   Group: day / week / month
   ========================= */

func (ctl *TimetableController) GroupDay(c *fiber.Ctx) error {
	date, err := parseDateParam(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "tanggal tidak valid (YYYY-MM-DD)")
	}
	name := strings.TrimSpace(c.Params("name"))
	tt, err := ctl.Service.GroupDayTimetable(reqCtx(c), date, name)
	if err != nil {
		return writeTimetableError(c, "GroupDay", err)
	}
	return helper.JsonOK(c, "OK", tt)
}

func (ctl *TimetableController) GroupWeek(c *fiber.Ctx) error {
	date, err := parseDateParam(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "tanggal tidak valid (YYYY-MM-DD)")
	}
	name := strings.TrimSpace(c.Params("name"))
	tts, err := ctl.Service.GroupWeekTimetable(reqCtx(c), date, name)
	if err != nil {
		return writeTimetableError(c, "GroupWeek", err)
	}
	return helper.JsonOK(c, "OK", tts)
}

func (ctl *TimetableController) GroupMonth(c *fiber.Ctx) error {
	date, err := parseDateParam(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "tanggal tidak valid (YYYY-MM-DD)")
	}
	name := strings.TrimSpace(c.Params("name"))
	tts, err := ctl.Service.GroupMonthTimetable(reqCtx(c), date, name)
	if err != nil {
		return writeTimetableError(c, "GroupMonth", err)
	}
	return helper.JsonOK(c, "OK", tts)
}
