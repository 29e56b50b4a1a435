package controllers

import (
	"strconv"

	"github.com/HandyAndyTobes/lunch-club-orders-app/pkg/resp"
	"github.com/HandyAndyTobes/lunch-club-orders-app/services"
	"github.com/gin-gonic/gin"
)

type DessertController struct {
	Service *services.InventoryService
}

func NewDessertController(service *services.InventoryService) *DessertController {
	return &DessertController{Service: service}
}

// GET /desserts
func (dc *DessertController) List(c *gin.Context) {
	items, err := dc.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type addDessertReq struct {
	Name          string `json:"name"`
	StartingStock int    `json:"startingStock"`
}

// POST /desserts
func (dc *DessertController) Create(c *gin.Context) {
	var req addDessertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	d, err := dc.Service.AddDessert(req.Name, req.StartingStock)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, d)
}

// PATCH /desserts/:id
func (dc *DessertController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid dessert id")
		return
	}

	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	d, err := dc.Service.UpdateDessert(uint(id), updates)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, d)
}

// DELETE /desserts/:id
func (dc *DessertController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid dessert id")
		return
	}

	if err := dc.Service.DeleteDessert(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// POST /desserts/reset — weekly stock reset
func (dc *DessertController) ResetAll(c *gin.Context) {
	if err := dc.Service.ResetAllStock(); err != nil {
		resp.ServerError(c, err)
		return
	}

	items, err := dc.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
