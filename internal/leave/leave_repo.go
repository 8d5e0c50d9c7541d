package leave

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, lv *Leave) error
	FindAll(ctx context.Context) ([]Leave, error)
	FindByID(ctx context.Context, id uint) (*Leave, error)
	Update(ctx context.Context, lv *Leave) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, lv *Leave) error {
	return r.db.WithContext(ctx).Create(lv).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).Order("id ASC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Leave, error) {
	var lv Leave
	if err := r.db.WithContext(ctx).First(&lv, id).Error; err != nil {
		return nil, err
	}
	return &lv, nil
}

func (r *repository) Update(ctx context.Context, lv *Leave) error {
	return r.db.WithContext(ctx).Save(lv).Error
}

func (r *repository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Leave{}, id)
	return res.RowsAffected, res.Error
}
