package services

import (
	"strings"

	"github.com/HandyAndyTobes/lunch-club-orders-app/entity"
	"github.com/HandyAndyTobes/lunch-club-orders-app/repository"
)

type FundService struct {
	Repo *repository.FundRepository
}

func NewFundService(repo *repository.FundRepository) *FundService {
	return &FundService{Repo: repo}
}

func (s *FundService) RecordDonation(donor string, amount float64, notes string) (*entity.PayItForwardDonation, error) {
	donor = strings.TrimSpace(donor)
	if donor == "" {
		return nil, ErrEmptyName
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	d := entity.PayItForwardDonation{DonorName: donor, Amount: amount, Notes: notes}
	if err := s.Repo.CreateDonation(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *FundService) RecordUsage(recipient string, amount float64, orderID uint, notes string) (*entity.PayItForwardUsage, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return nil, ErrEmptyName
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	u := entity.PayItForwardUsage{
		RecipientName: recipient,
		Amount:        amount,
		OrderID:       orderID,
		Notes:         notes,
	}
	if err := s.Repo.CreateUsage(s.Repo.DB, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *FundService) GetBalance() (*repository.FundBalance, error) {
	return s.Repo.Balance()
}

func (s *FundService) ListDonations(limit int) ([]entity.PayItForwardDonation, error) {
	return s.Repo.ListDonations(limit)
}

func (s *FundService) ListUsage(limit int) ([]entity.PayItForwardUsage, error) {
	return s.Repo.ListUsage(limit)
}
