package repository

import (
	"github.com/HandyAndyTobes/lunch-club-orders-app/entity"
	"gorm.io/gorm"
)

// FundRepository backs the pay-it-forward ledger. Donations and usage
// are append-only; the balance is always derived in the store.
type FundRepository struct {
	DB *gorm.DB
}

func NewFundRepository(db *gorm.DB) *FundRepository {
	return &FundRepository{DB: db}
}

type FundBalance struct {
	CurrentBalance float64 `json:"currentBalance"`
	TotalDonations float64 `json:"totalDonations"`
	TotalUsed      float64 `json:"totalUsed"`
}

func (r *FundRepository) CreateDonation(d *entity.PayItForwardDonation) error {
	return r.DB.Create(d).Error
}

func (r *FundRepository) CreateUsage(tx *gorm.DB, u *entity.PayItForwardUsage) error {
	return tx.Create(u).Error
}

func (r *FundRepository) ListDonations(limit int) ([]entity.PayItForwardDonation, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []entity.PayItForwardDonation
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *FundRepository) ListUsage(limit int) ([]entity.PayItForwardUsage, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []entity.PayItForwardUsage
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}

// Balance sums both ledgers in the store rather than trusting any
// client-side running total.
func (r *FundRepository) Balance() (*FundBalance, error) {
	var donated, used float64

	err := r.DB.Model(&entity.PayItForwardDonation{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&donated).Error
	if err != nil {
		return nil, err
	}

	err = r.DB.Model(&entity.PayItForwardUsage{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&used).Error
	if err != nil {
		return nil, err
	}

	return &FundBalance{
		CurrentBalance: donated - used,
		TotalDonations: donated,
		TotalUsed:      used,
	}, nil
}
