package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/HandyAndyTobes/lunch-club-orders-app/entity"
	"github.com/HandyAndyTobes/lunch-club-orders-app/repository"
	"github.com/HandyAndyTobes/lunch-club-orders-app/services"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestFundService(t *testing.T) *services.FundService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.PayItForwardDonation{}, &entity.PayItForwardUsage{},
	))
	return services.NewFundService(repository.NewFundRepository(db))
}

func (h *FundHub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func TestFundFeedSendsSnapshotThenBroadcasts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := newTestFundService(t)
	_, err := svc.RecordDonation("Margaret", 10.00, "")
	require.NoError(t, err)

	hub := NewFundHub(svc)
	go hub.Run()

	r := gin.New()
	r.GET("/ws/pay-it-forward", hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/pay-it-forward"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// the snapshot arrives before the hub ever sees the connection
	var snapshot repository.FundBalance
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&snapshot))
	assert.Equal(t, 10.00, snapshot.CurrentBalance)

	// wait for registration so the broadcast has a receiver
	deadline := time.Now().Add(2 * time.Second)
	for hub.clientCount() == 0 {
		require.True(t, time.Now().Before(deadline), "connection never registered")
		time.Sleep(5 * time.Millisecond)
	}

	_, err = svc.RecordUsage("Bob", 4.00, 0, "")
	require.NoError(t, err)
	hub.NotifyChanged()

	var update repository.FundBalance
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, 6.00, update.CurrentBalance)
	assert.Equal(t, 10.00, update.TotalDonations)
	assert.Equal(t, 4.00, update.TotalUsed)
}
