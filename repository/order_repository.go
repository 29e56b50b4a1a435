package repository

import (
	"github.com/HandyAndyTobes/lunch-club-orders-app/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListByWeek returns a week's orders, newest first. Week match is an
// exact string comparison.
func (r *OrderRepository) ListByWeek(week string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("week = ?", week).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll(limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	var orders []entity.Order
	err := r.DB.Order("id DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

// DistinctWeeks lists every week that has at least one order, most
// recent first.
func (r *OrderRepository) DistinctWeeks() ([]string, error) {
	var weeks []string
	err := r.DB.Model(&entity.Order{}).
		Distinct("week").
		Order("week DESC").
		Pluck("week", &weeks).Error
	return weeks, err
}

func (r *OrderRepository) Update(tx *gorm.DB, orderID uint, updates map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}

func (r *OrderRepository) Delete(tx *gorm.DB, orderID uint) error {
	return tx.Delete(&entity.Order{}, orderID).Error
}

func (r *OrderRepository) DeleteByWeek(week string) error {
	return r.DB.Where("week = ?", week).Delete(&entity.Order{}).Error
}

func (r *OrderRepository) DeleteAll() error {
	return r.DB.Where("1 = 1").Delete(&entity.Order{}).Error
}
