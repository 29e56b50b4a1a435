package services

import (
	"strings"

	"github.com/HandyAndyTobes/lunch-club-orders-app/entity"
	"github.com/HandyAndyTobes/lunch-club-orders-app/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// ---------------- Meal options ----------------

func (s *MenuService) ListMealOptions() ([]entity.MealOption, error) {
	return s.Repo.ListMealOptions()
}

// AddMealOption rejects empty names and exact-case duplicates, and
// appends with the next sort position.
func (s *MenuService) AddMealOption(name string) (*entity.MealOption, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	cnt, err := s.Repo.CountMealByName(name)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, ErrDuplicateOption
	}

	maxOrder, err := s.Repo.MaxMealSortOrder()
	if err != nil {
		return nil, err
	}

	opt := entity.MealOption{Name: name, Active: true, SortOrder: maxOrder + 1}
	if err := s.Repo.CreateMealOption(&opt); err != nil {
		return nil, err
	}
	return &opt, nil
}

func (s *MenuService) DeleteMealOption(id uint) error {
	return s.Repo.DeleteMealOption(id)
}

// ---------------- Sub-item options ----------------

func (s *MenuService) ListSubItemOptions() ([]entity.SubItemOption, error) {
	return s.Repo.ListSubItemOptions()
}

func (s *MenuService) AddSubItemOption(name string) (*entity.SubItemOption, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	cnt, err := s.Repo.CountSubItemByName(name)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, ErrDuplicateOption
	}

	maxOrder, err := s.Repo.MaxSubItemSortOrder()
	if err != nil {
		return nil, err
	}

	opt := entity.SubItemOption{Name: name, Active: true, SortOrder: maxOrder + 1}
	if err := s.Repo.CreateSubItemOption(&opt); err != nil {
		return nil, err
	}
	return &opt, nil
}

func (s *MenuService) DeleteSubItemOption(id uint) error {
	return s.Repo.DeleteSubItemOption(id)
}
