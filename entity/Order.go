package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	TableNumber  string    `json:"tableNumber"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	IsActive     bool      `json:"isActive"`
	IsCheckedOut bool      `json:"isCheckedOut"`
	TotalAmount  int64     `json:"totalAmount"`

	// เรียงตามลำดับที่สั่ง (id)
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	// คำนวณตอนตอบเท่านั้น ไม่เก็บลง DB
	RemainingSeconds int64 `gorm:"-" json:"remainingSeconds"`
}
