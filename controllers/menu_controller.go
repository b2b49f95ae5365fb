package controllers

import (
	"github.com/somchx/buffet-ordering-system/pkg/resp"
	"github.com/somchx/buffet-ordering-system/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// GET /api/menu
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Service.ListAvailable()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /api/menu
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.MenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Service.Create(&req)
	if err != nil {
		resp.Error(c, statusFor(err), err.Error())
		return
	}
	resp.Created(c, item)
}

// PUT /api/menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req services.MenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Service.Update(id, &req)
	if err != nil {
		resp.Error(c, statusFor(err), err.Error())
		return
	}
	resp.OK(c, item)
}

// DELETE /api/menu/:id (soft delete)
func (ctl *MenuController) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := ctl.Service.Delete(id); err != nil {
		resp.Error(c, statusFor(err), err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
