package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/HandyAndyTobes/lunch-club-orders-app/pkg/resp"
	"github.com/HandyAndyTobes/lunch-club-orders-app/services"
	"github.com/HandyAndyTobes/lunch-club-orders-app/utils"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Orders     *services.OrderService
	Inventory  *services.InventoryService
	Attendance *services.AttendanceService
}

func NewAdminController(
	orders *services.OrderService,
	inventory *services.InventoryService,
	attendance *services.AttendanceService,
) *AdminController {
	return &AdminController{Orders: orders, Inventory: inventory, Attendance: attendance}
}

// GET /admin/export?week= — one JSON document per week, served as a
// download like the original export button.
func (ac *AdminController) Export(c *gin.Context) {
	week := c.Query("week")
	if week == "" {
		week = utils.CurrentWeek(time.Now())
	}

	bundle, err := ac.Orders.Export(week)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	filename := fmt.Sprintf("lunch-club-data-%s.json", week)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, bundle)
}

// DELETE /admin/orders?week= — clear one week's orders
func (ac *AdminController) ClearWeek(c *gin.Context) {
	week := c.Query("week")
	if week == "" {
		week = utils.CurrentWeek(time.Now())
	}

	if err := ac.Orders.Repo.DeleteByWeek(week); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"week": week})
}

// POST /admin/clear-all — wipe orders and attendance, reset stock
func (ac *AdminController) ClearAll(c *gin.Context) {
	if err := ac.Orders.Repo.DeleteAll(); err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := ac.Attendance.Repo.DeleteAll(); err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := ac.Inventory.ResetAllStock(); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
