package repository

import (
	"github.com/HandyAndyTobes/lunch-club-orders-app/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ---------------- Meal options ----------------

func (r *MenuRepository) ListMealOptions() ([]entity.MealOption, error) {
	var opts []entity.MealOption
	err := r.DB.Order("sort_order").Find(&opts).Error
	return opts, err
}

// CountMealByName is a case-sensitive exact match against active names.
func (r *MenuRepository) CountMealByName(name string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.MealOption{}).
		Where("name = ? AND active = ?", name, true).
		Count(&cnt).Error
	return cnt, err
}

func (r *MenuRepository) MaxMealSortOrder() (int, error) {
	var row struct{ Max int }
	err := r.DB.Model(&entity.MealOption{}).
		Select("COALESCE(MAX(sort_order), 0) AS max").
		Scan(&row).Error
	return row.Max, err
}

func (r *MenuRepository) CreateMealOption(opt *entity.MealOption) error {
	return r.DB.Create(opt).Error
}

func (r *MenuRepository) DeleteMealOption(id uint) error {
	return r.DB.Delete(&entity.MealOption{}, id).Error
}

// ---------------- Sub-item options ----------------

func (r *MenuRepository) ListSubItemOptions() ([]entity.SubItemOption, error) {
	var opts []entity.SubItemOption
	err := r.DB.Order("sort_order").Find(&opts).Error
	return opts, err
}

func (r *MenuRepository) CountSubItemByName(name string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.SubItemOption{}).
		Where("name = ? AND active = ?", name, true).
		Count(&cnt).Error
	return cnt, err
}

func (r *MenuRepository) MaxSubItemSortOrder() (int, error) {
	var row struct{ Max int }
	err := r.DB.Model(&entity.SubItemOption{}).
		Select("COALESCE(MAX(sort_order), 0) AS max").
		Scan(&row).Error
	return row.Max, err
}

func (r *MenuRepository) CreateSubItemOption(opt *entity.SubItemOption) error {
	return r.DB.Create(opt).Error
}

func (r *MenuRepository) DeleteSubItemOption(id uint) error {
	return r.DB.Delete(&entity.SubItemOption{}, id).Error
}
