package controllers

import (
	"time"

	"github.com/HandyAndyTobes/lunch-club-orders-app/pkg/resp"
	"github.com/HandyAndyTobes/lunch-club-orders-app/services"
	"github.com/HandyAndyTobes/lunch-club-orders-app/utils"
	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	Service *services.AttendanceService
}

func NewAttendanceController(service *services.AttendanceService) *AttendanceController {
	return &AttendanceController{Service: service}
}

// GET /attendance/summary?week=
func (ac *AttendanceController) Summary(c *gin.Context) {
	week := c.Query("week")
	if week == "" {
		week = utils.CurrentWeek(time.Now())
	}

	summary, err := ac.Service.SummarizeWeek(week)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, summary)
}

// GET /attendance/weeks — weeks that have orders, for the dropdown
func (ac *AttendanceController) Weeks(c *gin.Context) {
	weeks, err := ac.Service.Weeks()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"weeks": weeks})
}

type generateSheetReq struct {
	Week string `json:"week"`
}

// POST /attendance/sheets
func (ac *AttendanceController) GenerateSheet(c *gin.Context) {
	var req generateSheetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Week == "" {
		req.Week = utils.CurrentWeek(time.Now())
	}

	rec, err := ac.Service.GenerateSheet(req.Week)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, rec)
}

// GET /attendance/history
func (ac *AttendanceController) History(c *gin.Context) {
	records, err := ac.Service.History()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": records})
}
