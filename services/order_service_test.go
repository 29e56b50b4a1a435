package services

import (
	"testing"

	"github.com/HandyAndyTobes/lunch-club-orders-app/entity"
	"github.com/HandyAndyTobes/lunch-club-orders-app/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a :memory: database lives per connection; keep the pool at one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Order{},
		&entity.DessertItem{},
		&entity.MealOption{}, &entity.SubItemOption{},
		&entity.PayItForwardDonation{}, &entity.PayItForwardUsage{},
		&entity.AttendanceRecord{},
	)
	require.NoError(t, err)
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewDessertRepository(db),
		repository.NewFundRepository(db),
		repository.NewAttendanceRepository(db),
	)
}

func seedDessert(t *testing.T, db *gorm.DB, name string, stock int) {
	t.Helper()
	require.NoError(t, db.Create(&entity.DessertItem{
		Name:           name,
		StartingStock:  stock,
		RemainingStock: stock,
		Active:         true,
	}).Error)
}

func TestSubmitRequiresNameAndMeal(t *testing.T) {
	db := newTestDB(t)
	s := newOrderService(db)

	_, err := s.Submit(&SubmitOrderReq{MealChoice: "Soup of the Day"}, "2025-06-09")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = s.Submit(&SubmitOrderReq{CustomerName: "Alice"}, "2025-06-09")
	assert.ErrorIs(t, err, ErrMissingFields)

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestSubmitWithoutDessert(t *testing.T) {
	db := newTestDB(t)
	s := newOrderService(db)

	order, err := s.Submit(&SubmitOrderReq{
		CustomerName: "Alice",
		MealChoice:   "Soup of the Day",
		SubItems:     []string{"Bread Roll"},
		PaidAmount:   5.00,
	}, "2025-06-09")
	require.NoError(t, err)

	assert.NotZero(t, order.ID)
	assert.Equal(t, "2025-06-09", order.Week)
	assert.Equal(t, entity.StringList{"Bread Roll"}, order.SubItems)
}

func TestSubmitDecrementsDessertStock(t *testing.T) {
	db := newTestDB(t)
	s := newOrderService(db)
	seedDessert(t, db, "Pie", 5)

	_, err := s.Submit(&SubmitOrderReq{
		CustomerName: "Alice",
		MealChoice:   "Soup of the Day",
		Dessert:      "Pie",
	}, "2025-06-09")
	require.NoError(t, err)

	d, err := s.DessertRepo.FindByName("Pie")
	require.NoError(t, err)
	assert.Equal(t, 4, d.RemainingStock)
	assert.Equal(t, 5, d.StartingStock)
}

func TestSubmitSellsOutThenRejects(t *testing.T) {
	db := newTestDB(t)
	s := newOrderService(db)
	seedDessert(t, db, "Pie", 5)

	for i := 0; i < 5; i++ {
		_, err := s.Submit(&SubmitOrderReq{
			CustomerName: "Alice",
			MealChoice:   "Soup of the Day",
			Dessert:      "Pie",
		}, "2025-06-09")
		require.NoError(t, err)
	}

	d, err := s.DessertRepo.FindByName("Pie")
	require.NoError(t, err)
	require.Equal(t, 0, d.RemainingStock)

	_, err = s.Submit(&SubmitOrderReq{
		CustomerName: "Carol",
		MealChoice:   "Soup of the Day",
		Dessert:      "Pie",
	}, "2025-06-09")
	assert.ErrorIs(t, err, ErrDessertUnavailable)

	// rejected order must not exist, stock stays at zero
	var count int64
	db.Model(&entity.Order{}).Count(&count)
	assert.Equal(t, int64(5), count)

	d, err = s.DessertRepo.FindByName("Pie")
	require.NoError(t, err)
	assert.Equal(t, 0, d.RemainingStock)
}

func TestSubmitUnknownDessertRejected(t *testing.T) {
	db := newTestDB(t)
	s := newOrderService(db)

	_, err := s.Submit(&SubmitOrderReq{
		CustomerName: "Alice",
		MealChoice:   "Soup of the Day",
		Dessert:      "Trifle",
	}, "2025-06-09")
	assert.ErrorIs(t, err, ErrDessertUnavailable)
}

func TestSubmitRecordsFundUsage(t *testing.T) {
	db := newTestDB(t)
	s := newOrderService(db)

	order, err := s.Submit(&SubmitOrderReq{
		CustomerName:       "Bob",
		MealChoice:         "Jacket Potato",
		PayItForwardAmount: 4.00,
	}, "2025-06-09")
	require.NoError(t, err)

	var usage []entity.PayItForwardUsage
	require.NoError(t, db.Find(&usage).Error)
	require.Len(t, usage, 1)
	assert.Equal(t, order.ID, usage[0].OrderID)
	assert.Equal(t, "Bob", usage[0].RecipientName)
	assert.Equal(t, 4.00, usage[0].Amount)
}

func TestUpdateSwapsDessertStock(t *testing.T) {
	db := newTestDB(t)
	s := newOrderService(db)
	seedDessert(t, db, "Pie", 5)
	seedDessert(t, db, "Cake", 3)

	order, err := s.Submit(&SubmitOrderReq{
		CustomerName: "Alice",
		MealChoice:   "Soup of the Day",
		Dessert:      "Pie",
	}, "2025-06-09")
	require.NoError(t, err)

	updated, err := s.Update(order.ID, &SubmitOrderReq{
		CustomerName: "Alice",
		MealChoice:   "Soup of the Day",
		Dessert:      "Cake",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cake", updated.Dessert)

	pie, _ := s.DessertRepo.FindByName("Pie")
	cake, _ := s.DessertRepo.FindByName("Cake")
	assert.Equal(t, 5, pie.RemainingStock)
	assert.Equal(t, 2, cake.RemainingStock)
}

func TestUpdateToSoldOutDessertRollsBack(t *testing.T) {
	db := newTestDB(t)
	s := newOrderService(db)
	seedDessert(t, db, "Pie", 5)
	seedDessert(t, db, "Cake", 0)

	order, err := s.Submit(&SubmitOrderReq{
		CustomerName: "Alice",
		MealChoice:   "Soup of the Day",
		Dessert:      "Pie",
	}, "2025-06-09")
	require.NoError(t, err)

	_, err = s.Update(order.ID, &SubmitOrderReq{
		CustomerName: "Alice",
		MealChoice:   "Soup of the Day",
		Dessert:      "Cake",
	})
	assert.ErrorIs(t, err, ErrDessertUnavailable)

	// the failed edit must not have restocked the pie
	pie, _ := s.DessertRepo.FindByName("Pie")
	assert.Equal(t, 4, pie.RemainingStock)

	current, err := s.Repo.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pie", current.Dessert)
}

func TestDeleteRestocksDessert(t *testing.T) {
	db := newTestDB(t)
	s := newOrderService(db)
	seedDessert(t, db, "Pie", 5)

	order, err := s.Submit(&SubmitOrderReq{
		CustomerName: "Alice",
		MealChoice:   "Soup of the Day",
		Dessert:      "Pie",
	}, "2025-06-09")
	require.NoError(t, err)

	require.NoError(t, s.Delete(order.ID))

	pie, _ := s.DessertRepo.FindByName("Pie")
	assert.Equal(t, 5, pie.RemainingStock)

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestPrintViewGroupsByTable(t *testing.T) {
	db := newTestDB(t)
	s := newOrderService(db)

	submit := func(name, table string) {
		_, err := s.Submit(&SubmitOrderReq{
			CustomerName: name,
			MealChoice:   "Soup of the Day",
			TableNumber:  table,
		}, "2025-06-09")
		require.NoError(t, err)
	}
	submit("Dana", "10")
	submit("Alice", "2")
	submit("Bob", "")
	submit("Carol", "2")

	groups, err := s.PrintView("2025-06-09")
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, "2", groups[0].Table)
	assert.Len(t, groups[0].Orders, 2)
	assert.Equal(t, "10", groups[1].Table)
	assert.Equal(t, "No Table", groups[2].Table)
}

func TestExportBundlesWeekData(t *testing.T) {
	db := newTestDB(t)
	s := newOrderService(db)
	seedDessert(t, db, "Pie", 5)

	_, err := s.Submit(&SubmitOrderReq{
		CustomerName: "Alice",
		MealChoice:   "Soup of the Day",
	}, "2025-06-09")
	require.NoError(t, err)
	_, err = s.Submit(&SubmitOrderReq{
		CustomerName: "Bob",
		MealChoice:   "Soup of the Day",
	}, "2025-06-16")
	require.NoError(t, err)

	bundle, err := s.Export("2025-06-09")
	require.NoError(t, err)

	assert.Equal(t, "2025-06-09", bundle.Week)
	assert.Len(t, bundle.Orders, 1)
	assert.Len(t, bundle.DessertInventory, 1)
	assert.False(t, bundle.ExportDate.IsZero())
}
