// file: internals/helpers/pg_error.go
package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Interface lokal supaya tidak terikat tipe driver tertentu;
// pgx maupun pq sama-sama mengekspos SQLState().
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// MapPGError memetakan SQLSTATE umum ke status + pesan untuk CRUD sederhana.
func MapPGError(err error) (int, string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, "Data tidak ditemukan"
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return http.StatusConflict, "Data duplikat (unique violation)"
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)"
		case "23P01":
			return http.StatusConflict, "Bentrok constraint eksklusi"
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}
