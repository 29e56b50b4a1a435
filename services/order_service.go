package services

import (
	"sort"
	"strconv"
	"time"

	"github.com/HandyAndyTobes/lunch-club-orders-app/entity"
	"github.com/HandyAndyTobes/lunch-club-orders-app/repository"
	"gorm.io/gorm"
)

type OrderService struct {
	DB             *gorm.DB
	Repo           *repository.OrderRepository
	DessertRepo    *repository.DessertRepository
	FundRepo       *repository.FundRepository
	AttendanceRepo *repository.AttendanceRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	dessertRepo *repository.DessertRepository,
	fundRepo *repository.FundRepository,
	attendanceRepo *repository.AttendanceRepository,
) *OrderService {
	return &OrderService{
		DB:             db,
		Repo:           repo,
		DessertRepo:    dessertRepo,
		FundRepo:       fundRepo,
		AttendanceRepo: attendanceRepo,
	}
}

// ----- DTOs from Controller -----

type SubmitOrderReq struct {
	CustomerName       string   `json:"customerName"`
	MealChoice         string   `json:"mealChoice"`
	SubItems           []string `json:"subItems"`
	Dessert            string   `json:"dessert"`
	Drink              string   `json:"drink"`
	SpecialRequest     string   `json:"specialRequest"`
	TableNumber        string   `json:"tableNumber"`
	PaidAmount         float64  `json:"paidAmount"`
	PayItForwardAmount float64  `json:"payItForwardAmount"`
}

// Submit runs the whole order workflow: required fields, dessert stock,
// then the order insert, stock decrement and fund usage entry in one
// transaction. Either everything lands or nothing does.
func (s *OrderService) Submit(req *SubmitOrderReq, currentWeek string) (*entity.Order, error) {
	if req.CustomerName == "" || req.MealChoice == "" {
		return nil, ErrMissingFields
	}

	// fail fast before any write; the real guard is the conditional
	// decrement inside the transaction
	if req.Dessert != "" {
		d, err := s.DessertRepo.FindByName(req.Dessert)
		if err != nil || !d.Active || d.RemainingStock <= 0 {
			return nil, ErrDessertUnavailable
		}
	}

	order := entity.Order{
		CustomerName:       req.CustomerName,
		MealChoice:         req.MealChoice,
		SubItems:           entity.StringList(req.SubItems),
		Dessert:            req.Dessert,
		Drink:              req.Drink,
		SpecialRequest:     req.SpecialRequest,
		TableNumber:        req.TableNumber,
		PaidAmount:         req.PaidAmount,
		PayItForwardAmount: req.PayItForwardAmount,
		Week:               currentWeek,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}

		if order.Dessert != "" {
			ok, err := s.DessertRepo.DecrementStock(tx, order.Dessert)
			if err != nil {
				return err
			}
			if !ok {
				return ErrDessertUnavailable
			}
		}

		if order.PayItForwardAmount > 0 {
			usage := entity.PayItForwardUsage{
				RecipientName: order.CustomerName,
				Amount:        order.PayItForwardAmount,
				Notes:         "Meal subsidy",
				OrderID:       order.ID,
			}
			if err := s.FundRepo.CreateUsage(tx, &usage); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Update edits an order. A dessert change restocks the old choice and
// takes one off the new one; both moves ride the same transaction as
// the field update.
func (s *OrderService) Update(orderID uint, req *SubmitOrderReq) (*entity.Order, error) {
	if req.CustomerName == "" || req.MealChoice == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.Repo.Get(orderID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if existing.Dessert != req.Dessert {
			if existing.Dessert != "" {
				if err := s.DessertRepo.IncrementStock(tx, existing.Dessert); err != nil {
					return err
				}
			}
			if req.Dessert != "" {
				ok, err := s.DessertRepo.DecrementStock(tx, req.Dessert)
				if err != nil {
					return err
				}
				if !ok {
					return ErrDessertUnavailable
				}
			}
		}

		subItems, err := entity.StringList(req.SubItems).Value()
		if err != nil {
			return err
		}
		return s.Repo.Update(tx, orderID, map[string]any{
			"customer_name":         req.CustomerName,
			"meal_choice":           req.MealChoice,
			"sub_items":             subItems,
			"dessert":               req.Dessert,
			"drink":                 req.Drink,
			"special_request":       req.SpecialRequest,
			"table_number":          req.TableNumber,
			"paid_amount":           req.PaidAmount,
			"pay_it_forward_amount": req.PayItForwardAmount,
		})
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.Get(orderID)
}

// Delete removes an order and returns its dessert portion to stock.
func (s *OrderService) Delete(orderID uint) error {
	existing, err := s.Repo.Get(orderID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if existing.Dessert != "" {
			if err := s.DessertRepo.IncrementStock(tx, existing.Dessert); err != nil {
				return err
			}
		}
		return s.Repo.Delete(tx, orderID)
	})
}

func (s *OrderService) ListForWeek(week string) ([]entity.Order, error) {
	return s.Repo.ListByWeek(week)
}

// ----- Print view -----

type TableGroup struct {
	Table  string         `json:"table"`
	Orders []entity.Order `json:"orders"`
}

// PrintView groups a week's orders by table, numeric tables ascending,
// orders with no table last.
func (s *OrderService) PrintView(week string) ([]TableGroup, error) {
	orders, err := s.Repo.ListByWeek(week)
	if err != nil {
		return nil, err
	}

	grouped := map[string][]entity.Order{}
	for _, o := range orders {
		key := o.TableNumber
		if key == "" {
			key = "No Table"
		}
		grouped[key] = append(grouped[key], o)
	}

	tables := make([]string, 0, len(grouped))
	for t := range grouped {
		tables = append(tables, t)
	}
	sort.Slice(tables, func(i, j int) bool {
		a, aerr := strconv.Atoi(tables[i])
		b, berr := strconv.Atoi(tables[j])
		if aerr != nil {
			return false
		}
		if berr != nil {
			return true
		}
		return a < b
	})

	out := make([]TableGroup, 0, len(tables))
	for _, t := range tables {
		out = append(out, TableGroup{Table: t, Orders: grouped[t]})
	}
	return out, nil
}

// ----- Export -----

type ExportBundle struct {
	Orders           []entity.Order            `json:"orders"`
	Attendance       []entity.AttendanceRecord `json:"attendance"`
	DessertInventory []entity.DessertItem      `json:"dessertInventory"`
	ExportDate       time.Time                 `json:"exportDate"`
	Week             string                    `json:"week"`
}

// Export collects one week's orders, its attendance snapshots and the
// full dessert inventory into a single downloadable document.
func (s *OrderService) Export(week string) (*ExportBundle, error) {
	orders, err := s.Repo.ListByWeek(week)
	if err != nil {
		return nil, err
	}
	attendance, err := s.AttendanceRepo.ListByWeek(week)
	if err != nil {
		return nil, err
	}
	desserts, err := s.DessertRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return &ExportBundle{
		Orders:           orders,
		Attendance:       attendance,
		DessertInventory: desserts,
		ExportDate:       time.Now(),
		Week:             week,
	}, nil
}
