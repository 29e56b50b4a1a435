package services

import (
	"strings"

	"github.com/HandyAndyTobes/lunch-club-orders-app/entity"
	"github.com/HandyAndyTobes/lunch-club-orders-app/repository"
)

type InventoryService struct {
	Repo *repository.DessertRepository
}

func NewInventoryService(repo *repository.DessertRepository) *InventoryService {
	return &InventoryService{Repo: repo}
}

func (s *InventoryService) List() ([]entity.DessertItem, error) {
	return s.Repo.FindAll()
}

func (s *InventoryService) AddDessert(name string, startingStock int) (*entity.DessertItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if startingStock <= 0 {
		return nil, ErrInvalidStock
	}

	cnt, err := s.Repo.CountByName(name)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, ErrDuplicateDessert
	}

	d := entity.DessertItem{
		Name:           name,
		StartingStock:  startingStock,
		RemainingStock: startingStock,
		Active:         true,
	}
	if err := s.Repo.Create(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateDessert passes admin edits straight through; the admin screen
// is allowed to override remaining stock outside its normal bounds.
func (s *InventoryService) UpdateDessert(id uint, updates map[string]any) (*entity.DessertItem, error) {
	allowed := map[string]any{}
	for k, v := range updates {
		switch k {
		case "name", "startingStock", "remainingStock", "active":
			allowed[toColumn(k)] = v
		}
	}
	if len(allowed) == 0 {
		return s.Repo.FindByID(id)
	}
	if err := s.Repo.Update(id, allowed); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

func (s *InventoryService) DeleteDessert(id uint) error {
	return s.Repo.Delete(id)
}

// ResetAllStock puts every dessert back to its starting count for a
// new service week.
func (s *InventoryService) ResetAllStock() error {
	return s.Repo.ResetAllStock()
}

func toColumn(field string) string {
	switch field {
	case "startingStock":
		return "starting_stock"
	case "remainingStock":
		return "remaining_stock"
	default:
		return field
	}
}
