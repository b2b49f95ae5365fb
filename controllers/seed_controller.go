package controllers

import (
	"github.com/somchx/buffet-ordering-system/configs"
	"github.com/somchx/buffet-ordering-system/pkg/resp"
	"github.com/somchx/buffet-ordering-system/services"

	"github.com/gin-gonic/gin"
)

type SeedController struct {
	Menu *services.MenuService
}

func NewSeedController(menu *services.MenuService) *SeedController {
	return &SeedController{Menu: menu}
}

// POST /api/seed — ยิงซ้ำได้ มีเมนูอยู่แล้วจะไม่สร้างเพิ่ม
func (ctl *SeedController) Seed(c *gin.Context) {
	created, err := ctl.Menu.Seed(configs.DefaultMenu())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !created {
		resp.OK(c, gin.H{"message": "data already exists"})
		return
	}
	resp.Created(c, gin.H{"message": "seed data created"})
}
