// file: internals/features/university/lessons/repository/entity_resolver.go
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	classroomModel "universityku_backend/internals/features/university/classrooms/model"
	courseModel "universityku_backend/internals/features/university/courses/model"
	teacherModel "universityku_backend/internals/features/university/teachers/model"
)

/* =======================================================
   EntityResolver — lookup entitas referensi by natural key.
   Semua method mengembalikan nil, nil saat tidak ketemu;
   pemetaan ke error domain dilakukan service.
   ======================================================= */

type EntityResolver interface {
	WithTx(tx *gorm.DB) EntityResolver

	ResolveCourseByName(ctx context.Context, name string) (*courseModel.CourseModel, error)
	ResolveTeacherByEmail(ctx context.Context, email string) (*teacherModel.TeacherModel, error)
	ResolveClassroomByNumber(ctx context.Context, number int) (*classroomModel.ClassroomModel, error)
}

type gormEntityResolver struct {
	db *gorm.DB
}

func NewEntityResolver(db *gorm.DB) EntityResolver {
	return &gormEntityResolver{db: db}
}

func (r *gormEntityResolver) WithTx(tx *gorm.DB) EntityResolver {
	return &gormEntityResolver{db: tx}
}

func firstOrNil[T any](db *gorm.DB, dst *T) (*T, error) {
	if err := db.First(dst).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return dst, nil
}

func (r *gormEntityResolver) ResolveCourseByName(ctx context.Context, name string) (*courseModel.CourseModel, error) {
	var row courseModel.CourseModel
	return firstOrNil(r.db.WithContext(ctx).Where("course_name = ?", name), &row)
}

func (r *gormEntityResolver) ResolveTeacherByEmail(ctx context.Context, email string) (*teacherModel.TeacherModel, error) {
	var row teacherModel.TeacherModel
	return firstOrNil(r.db.WithContext(ctx).Where("teacher_email = ?", email), &row)
}

func (r *gormEntityResolver) ResolveClassroomByNumber(ctx context.Context, number int) (*classroomModel.ClassroomModel, error) {
	var row classroomModel.ClassroomModel
	return firstOrNil(r.db.WithContext(ctx).Where("classroom_number = ?", number), &row)
}
