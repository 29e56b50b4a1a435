package controllers

import (
	"strconv"
	"time"

	"github.com/HandyAndyTobes/lunch-club-orders-app/pkg/resp"
	"github.com/HandyAndyTobes/lunch-club-orders-app/services"
	"github.com/HandyAndyTobes/lunch-club-orders-app/utils"
	"github.com/HandyAndyTobes/lunch-club-orders-app/ws"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
	Hub     *ws.FundHub
}

func NewOrderController(service *services.OrderService, hub *ws.FundHub) *OrderController {
	return &OrderController{Service: service, Hub: hub}
}

type submitOrderBody struct {
	services.SubmitOrderReq
	Week string `json:"week"`
}

// POST /orders
func (oc *OrderController) Submit(c *gin.Context) {
	var body submitOrderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	week := body.Week
	if week == "" {
		week = utils.CurrentWeek(time.Now())
	}

	order, err := oc.Service.Submit(&body.SubmitOrderReq, week)
	if err != nil {
		fail(c, err)
		return
	}

	if order.PayItForwardAmount > 0 && oc.Hub != nil {
		go oc.Hub.NotifyChanged()
	}
	resp.Created(c, order)
}

// GET /orders?week=
func (oc *OrderController) List(c *gin.Context) {
	week := c.Query("week")
	if week == "" {
		week = utils.CurrentWeek(time.Now())
	}

	orders, err := oc.Service.ListForWeek(week)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"week": week, "items": orders})
}

// GET /orders/print?week= — grouped for the kitchen printout
func (oc *OrderController) Print(c *gin.Context) {
	week := c.Query("week")
	if week == "" {
		week = utils.CurrentWeek(time.Now())
	}

	groups, err := oc.Service.PrintView(week)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"week": week, "tables": groups})
}

// PATCH /orders/:id
func (oc *OrderController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var body services.SubmitOrderReq
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.Update(uint(id), &body)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	if err := oc.Service.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
