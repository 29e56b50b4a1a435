package repository

import (
	"github.com/HandyAndyTobes/lunch-club-orders-app/entity"
	"gorm.io/gorm"
)

type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

func (r *AttendanceRepository) Create(rec *entity.AttendanceRecord) error {
	return r.DB.Create(rec).Error
}

func (r *AttendanceRepository) List() ([]entity.AttendanceRecord, error) {
	var out []entity.AttendanceRecord
	err := r.DB.Order("week DESC").Find(&out).Error
	return out, err
}

func (r *AttendanceRepository) ListByWeek(week string) ([]entity.AttendanceRecord, error) {
	var out []entity.AttendanceRecord
	err := r.DB.Where("week = ?", week).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *AttendanceRepository) DeleteAll() error {
	return r.DB.Where("1 = 1").Delete(&entity.AttendanceRecord{}).Error
}
