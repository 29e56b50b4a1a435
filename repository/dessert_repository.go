package repository

import (
	"github.com/HandyAndyTobes/lunch-club-orders-app/entity"
	"gorm.io/gorm"
)

type DessertRepository struct {
	DB *gorm.DB
}

func NewDessertRepository(db *gorm.DB) *DessertRepository {
	return &DessertRepository{DB: db}
}

func (r *DessertRepository) FindAll() ([]entity.DessertItem, error) {
	var items []entity.DessertItem
	err := r.DB.Order("name").Find(&items).Error
	return items, err
}

func (r *DessertRepository) FindByID(id uint) (*entity.DessertItem, error) {
	var d entity.DessertItem
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DessertRepository) FindByName(name string) (*entity.DessertItem, error) {
	var d entity.DessertItem
	if err := r.DB.Where("name = ?", name).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// CountByName counts live rows only; soft-deleted desserts do not
// hold their name.
func (r *DessertRepository) CountByName(name string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.DessertItem{}).
		Where("name = ?", name).
		Count(&cnt).Error
	return cnt, err
}

func (r *DessertRepository) Create(d *entity.DessertItem) error {
	return r.DB.Create(d).Error
}

// Update overwrites whatever fields the admin sent. No bounds check:
// remaining stock can be pushed above starting or below zero by a
// direct admin edit.
func (r *DessertRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.DessertItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *DessertRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.DessertItem{}, id).Error
}

// DecrementStock takes one portion off an active dessert, but only if
// stock remains. Returns false when the dessert is missing, inactive or
// sold out; the guard makes concurrent oversell impossible.
func (r *DessertRepository) DecrementStock(tx *gorm.DB, name string) (bool, error) {
	res := tx.Model(&entity.DessertItem{}).
		Where("name = ? AND active = ? AND remaining_stock > 0", name, true).
		Update("remaining_stock", gorm.Expr("remaining_stock - 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// IncrementStock returns one portion to a dessert, used when an order
// is edited away from it or deleted.
func (r *DessertRepository) IncrementStock(tx *gorm.DB, name string) error {
	return tx.Model(&entity.DessertItem{}).
		Where("name = ?", name).
		Update("remaining_stock", gorm.Expr("remaining_stock + 1")).Error
}

// ResetAllStock puts every dessert back to its starting count.
func (r *DessertRepository) ResetAllStock() error {
	return r.DB.Model(&entity.DessertItem{}).
		Where("1 = 1").
		Update("remaining_stock", gorm.Expr("starting_stock")).Error
}
