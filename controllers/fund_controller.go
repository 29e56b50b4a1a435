package controllers

import (
	"strconv"

	"github.com/HandyAndyTobes/lunch-club-orders-app/pkg/resp"
	"github.com/HandyAndyTobes/lunch-club-orders-app/services"
	"github.com/HandyAndyTobes/lunch-club-orders-app/ws"
	"github.com/gin-gonic/gin"
)

type FundController struct {
	Service *services.FundService
	Hub     *ws.FundHub
}

func NewFundController(service *services.FundService, hub *ws.FundHub) *FundController {
	return &FundController{Service: service, Hub: hub}
}

// GET /pay-it-forward/balance
func (fc *FundController) Balance(c *gin.Context) {
	balance, err := fc.Service.GetBalance()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, balance)
}

type donationReq struct {
	DonorName string  `json:"donorName"`
	Amount    float64 `json:"amount"`
	Notes     string  `json:"notes"`
}

// POST /pay-it-forward/donations
func (fc *FundController) Donate(c *gin.Context) {
	var req donationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	d, err := fc.Service.RecordDonation(req.DonorName, req.Amount, req.Notes)
	if err != nil {
		fail(c, err)
		return
	}

	if fc.Hub != nil {
		go fc.Hub.NotifyChanged()
	}
	resp.Created(c, d)
}

// GET /pay-it-forward/donations?limit=
func (fc *FundController) Donations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	items, err := fc.Service.ListDonations(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type usageReq struct {
	RecipientName string  `json:"recipientName"`
	Amount        float64 `json:"amount"`
	OrderID       uint    `json:"orderId"`
	Notes         string  `json:"notes"`
}

// POST /pay-it-forward/usage
func (fc *FundController) Use(c *gin.Context) {
	var req usageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	u, err := fc.Service.RecordUsage(req.RecipientName, req.Amount, req.OrderID, req.Notes)
	if err != nil {
		fail(c, err)
		return
	}

	if fc.Hub != nil {
		go fc.Hub.NotifyChanged()
	}
	resp.Created(c, u)
}

// GET /pay-it-forward/usage?limit=
func (fc *FundController) Usage(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	items, err := fc.Service.ListUsage(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
