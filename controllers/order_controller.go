package controllers

import (
	"io"
	"strconv"

	"github.com/somchx/buffet-ordering-system/pkg/resp"
	"github.com/somchx/buffet-ordering-system/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// POST /api/orders/start
func (ctl *OrderController) Start(c *gin.Context) {
	var req services.StartOrderReq
	// body ว่างได้ (ไม่ระบุโต๊ะ)
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		resp.BadRequest(c, "invalid json")
		return
	}

	order, err := ctl.Service.Start(&req)
	if err != nil {
		resp.Error(c, statusFor(err), err.Error())
		return
	}
	resp.Created(c, order)
}

// GET /api/orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	order, err := ctl.Service.Get(id)
	if err != nil {
		resp.Error(c, statusFor(err), err.Error())
		return
	}
	resp.OK(c, order)
}

// POST /api/orders/:id/items
func (ctl *OrderController) AddItem(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req services.AddItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid json")
		return
	}

	item, err := ctl.Service.AddItem(id, &req)
	if err != nil {
		resp.Error(c, statusFor(err), err.Error())
		return
	}
	resp.Created(c, item)
}

// POST /api/orders/:id/checkout
func (ctl *OrderController) Checkout(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	out, err := ctl.Service.Checkout(id)
	if err != nil {
		resp.Error(c, statusFor(err), err.Error())
		return
	}
	resp.OK(c, out)
}

func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}
