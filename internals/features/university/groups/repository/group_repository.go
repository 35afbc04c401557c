// file: internals/features/university/groups/repository/group_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	m "universityku_backend/internals/features/university/groups/model"
	helper "universityku_backend/internals/helpers"
)

/* =======================================================
   GroupRepository — resolusi group by natural key (nama).

   FindOrCreateByName = langkah eksplisit "group dibuat otomatis
   saat pertama direferensikan lesson", supaya bisa diuji terpisah
   dari pipeline booking.
   ======================================================= */

type GroupRepository interface {
	WithTx(tx *gorm.DB) GroupRepository

	// nil, nil saat tidak ada.
	FindByName(ctx context.Context, name string) (*m.GroupModel, error)

	// created=true kalau group baru dibuat.
	FindOrCreateByName(ctx context.Context, name string) (*m.GroupModel, bool, error)

	// Ukuran group = jumlah student ter-enrol (snapshot utk cek kapasitas).
	CountStudents(ctx context.Context, group *m.GroupModel) (int, error)
}

type gormGroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &gormGroupRepository{db: db}
}

func (r *gormGroupRepository) WithTx(tx *gorm.DB) GroupRepository {
	return &gormGroupRepository{db: tx}
}

func (r *gormGroupRepository) FindByName(ctx context.Context, name string) (*m.GroupModel, error) {
	var row m.GroupModel
	err := r.db.WithContext(ctx).
		Where("group_name = ?", name).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *gormGroupRepository) FindOrCreateByName(ctx context.Context, name string) (*m.GroupModel, bool, error) {
	found, err := r.FindByName(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if found != nil {
		return found, false, nil
	}

	// Guard terakhir sebelum auto-create; DTO sudah memvalidasi lebih dulu.
	if !helper.IsValidGroupName(name) {
		return nil, false, fmt.Errorf("nama group %q tidak sesuai pola AA-11", name)
	}

	row := m.GroupModel{GroupName: name}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, false, err
	}
	return &row, true, nil
}

func (r *gormGroupRepository) CountStudents(ctx context.Context, group *m.GroupModel) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("students").
		Where("student_group_id = ? AND student_deleted_at IS NULL", group.GroupID).
		Count(&n).Error
	return int(n), err
}
