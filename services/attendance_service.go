package services

import (
	"sort"

	"github.com/HandyAndyTobes/lunch-club-orders-app/entity"
	"github.com/HandyAndyTobes/lunch-club-orders-app/repository"
)

type AttendanceService struct {
	OrderRepo *repository.OrderRepository
	Repo      *repository.AttendanceRepository
}

func NewAttendanceService(orderRepo *repository.OrderRepository, repo *repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{OrderRepo: orderRepo, Repo: repo}
}

type MealCount struct {
	Meal  string `json:"meal"`
	Count int    `json:"count"`
}

type WeekSummary struct {
	Week            string            `json:"week"`
	TotalOrders     int               `json:"totalOrders"`
	UniqueCustomers int               `json:"uniqueCustomers"`
	TotalRevenue    float64           `json:"totalRevenue"`
	AverageSpend    float64           `json:"averageSpend"`
	PerCustomer     []entity.Attendee `json:"perCustomer"`
	TopMeals        []MealCount       `json:"topMeals"`
}

// SummarizeWeek aggregates one week's orders: revenue, per-customer
// spend and the three most popular meals. Customers are grouped by the
// exact name string; two people sharing a name merge into one row.
func (s *AttendanceService) SummarizeWeek(week string) (*WeekSummary, error) {
	orders, err := s.OrderRepo.ListByWeek(week)
	if err != nil {
		return nil, err
	}
	return summarize(week, orders), nil
}

func summarize(week string, orders []entity.Order) *WeekSummary {
	summary := &WeekSummary{Week: week, TotalOrders: len(orders)}

	byCustomer := map[string]*entity.Attendee{}
	customerSeen := []string{}
	mealCounts := map[string]int{}
	mealSeen := []string{}

	for _, o := range orders {
		summary.TotalRevenue += o.PaidAmount

		a, ok := byCustomer[o.CustomerName]
		if !ok {
			a = &entity.Attendee{Name: o.CustomerName, TableNumber: o.TableNumber}
			byCustomer[o.CustomerName] = a
			customerSeen = append(customerSeen, o.CustomerName)
		}
		a.Orders++
		a.TotalSpent += o.PaidAmount

		if _, ok := mealCounts[o.MealChoice]; !ok {
			mealSeen = append(mealSeen, o.MealChoice)
		}
		mealCounts[o.MealChoice]++
	}

	summary.UniqueCustomers = len(byCustomer)
	if summary.TotalOrders > 0 {
		summary.AverageSpend = summary.TotalRevenue / float64(summary.TotalOrders)
	}

	for _, name := range customerSeen {
		summary.PerCustomer = append(summary.PerCustomer, *byCustomer[name])
	}

	// descending by count; ties keep first-seen order
	sort.SliceStable(mealSeen, func(i, j int) bool {
		return mealCounts[mealSeen[i]] > mealCounts[mealSeen[j]]
	})
	for i, meal := range mealSeen {
		if i == 3 {
			break
		}
		summary.TopMeals = append(summary.TopMeals, MealCount{Meal: meal, Count: mealCounts[meal]})
	}

	return summary
}

// GenerateSheet freezes the current summary for a week into an
// immutable attendance record.
func (s *AttendanceService) GenerateSheet(week string) (*entity.AttendanceRecord, error) {
	summary, err := s.SummarizeWeek(week)
	if err != nil {
		return nil, err
	}

	rec := entity.AttendanceRecord{
		Week:            week,
		TotalAttendees:  summary.TotalOrders,
		UniqueCustomers: summary.UniqueCustomers,
		TotalRevenue:    summary.TotalRevenue,
		Attendees:       entity.AttendeeList(summary.PerCustomer),
	}
	if err := s.Repo.Create(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *AttendanceService) History() ([]entity.AttendanceRecord, error) {
	return s.Repo.List()
}

// Weeks lists every week that has orders, for the summary dropdown.
func (s *AttendanceService) Weeks() ([]string, error) {
	return s.OrderRepo.DistinctWeeks()
}
