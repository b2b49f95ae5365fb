package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl"`
	IsAvailable bool   `json:"isAvailable"` // soft delete: ปิดการขาย ไม่ลบจริง

	OrderItems []OrderItem `json:"-"`
}
