package repository

import (
	"github.com/somchx/buffet-ordering-system/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// POST /orders/start → สร้าง order
func (r *OrderRepository) CreateOrder(o *entity.Order) error {
	return r.DB.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders/:id → order พร้อมรายการอาหาร เรียงตามลำดับที่สั่ง
func (r *OrderRepository) GetOrderWithItems(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id ASC")
		}).
		Preload("Items.MenuItem").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}

// เพิ่มยอดรวมฝั่ง SQL กัน lost update ตอนมีคำขอพร้อมกัน
func (r *OrderRepository) AddToTotal(tx *gorm.DB, orderID uint, amount int64) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("total_amount", gorm.Expr("total_amount + ?", amount)).Error
}

// ปิด order ที่หมดเวลา — guard ด้วย is_active กัน double transition
func (r *OrderRepository) DeactivateGuard(orderID uint) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND is_active = ?", orderID, true).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

// เช็คบิล — สำเร็จเฉพาะ order ที่ยังไม่เช็คบิล (affected 0 = เช็คไปแล้ว)
func (r *OrderRepository) CheckoutGuard(orderID uint) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND is_checked_out = ?", orderID, false).
		Updates(map[string]interface{}{
			"is_checked_out": true,
			"is_active":      false,
		})
	return res.RowsAffected, res.Error
}
