package controllers

import (
	"strconv"

	"github.com/HandyAndyTobes/lunch-club-orders-app/pkg/resp"
	"github.com/HandyAndyTobes/lunch-club-orders-app/services"
	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

type addOptionReq struct {
	Name string `json:"name"`
}

// ===== Meal options =====

// GET /meal-options
func (mc *MenuController) ListMeals(c *gin.Context) {
	opts, err := mc.Service.ListMealOptions()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": opts})
}

// POST /meal-options
func (mc *MenuController) AddMeal(c *gin.Context) {
	var req addOptionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	opt, err := mc.Service.AddMealOption(req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, opt)
}

// DELETE /meal-options/:id
func (mc *MenuController) DeleteMeal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid option id")
		return
	}
	if err := mc.Service.DeleteMealOption(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// ===== Sub-item options =====

// GET /sub-item-options
func (mc *MenuController) ListSubItems(c *gin.Context) {
	opts, err := mc.Service.ListSubItemOptions()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": opts})
}

// POST /sub-item-options
func (mc *MenuController) AddSubItem(c *gin.Context) {
	var req addOptionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	opt, err := mc.Service.AddSubItemOption(req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, opt)
}

// DELETE /sub-item-options/:id
func (mc *MenuController) DeleteSubItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid option id")
		return
	}
	if err := mc.Service.DeleteSubItemOption(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
