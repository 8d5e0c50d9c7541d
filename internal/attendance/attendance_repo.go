package attendance

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, att *Attendance) error
	FindAll(ctx context.Context) ([]Attendance, error)
	FindByID(ctx context.Context, id uint) (*Attendance, error)
	Update(ctx context.Context, att *Attendance) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, att *Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Attendance, error) {
	var atts []Attendance
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&atts).Error
	return atts, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Attendance, error) {
	var att Attendance
	err := r.db.WithContext(ctx).First(&att, "id = ?", id).Error
	return &att, err
}

func (r *repository) Update(ctx context.Context, att *Attendance) error {
	return r.db.WithContext(ctx).Save(att).Error
}

func (r *repository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Attendance{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
