package services

import (
	"errors"
	"time"

	"github.com/somchx/buffet-ordering-system/entity"
	"github.com/somchx/buffet-ordering-system/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository

	SessionDuration time.Duration
	Now             func() time.Time // override ได้ในเทส
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	sessionDuration time.Duration,
) *OrderService {
	return &OrderService{
		DB:              db,
		Repo:            repo,
		MenuRepo:        menuRepo,
		SessionDuration: sessionDuration,
		Now:             time.Now,
	}
}

// ----- DTOs from Controller -----
type StartOrderReq struct {
	TableNumber string `json:"tableNumber"`
}

type AddItemReq struct {
	MenuItemID uint `json:"menuItemId"`
	Quantity   int  `json:"quantity"`
}

type CheckoutRes struct {
	OrderID     uint  `json:"orderId"`
	TotalAmount int64 `json:"totalAmount"`
}

// ----- Start -----

// เปิดโต๊ะใหม่และเริ่มจับเวลา
func (s *OrderService) Start(req *StartOrderReq) (*entity.Order, error) {
	now := s.Now().UTC()
	order := entity.Order{
		TableNumber: req.TableNumber,
		StartTime:   now,
		EndTime:     now.Add(s.SessionDuration),
		IsActive:    true,
	}
	if err := s.Repo.CreateOrder(&order); err != nil {
		return nil, err
	}
	order.Items = []entity.OrderItem{}
	order.RemainingSeconds = int64(s.SessionDuration / time.Second)
	return &order, nil
}

// ----- Get -----

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderWithItems(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if _, err := s.checkAndExpire(o); err != nil {
		return nil, err
	}
	o.RemainingSeconds = s.remainingSeconds(o)
	return o, nil
}

// ----- AddItem -----

func (s *OrderService) AddItem(orderID uint, req *AddItemReq) (*entity.OrderItem, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	open, err := s.checkAndExpire(o)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, ErrOrderClosed
	}

	menuItem, err := s.MenuRepo.FindByID(req.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	if !menuItem.IsAvailable {
		return nil, ErrMenuItemUnavailable
	}
	if req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	item := entity.OrderItem{
		Quantity:   req.Quantity,
		UnitPrice:  menuItem.Price, // ราคาตอนสั่ง — แก้ราคาเมนูทีหลังไม่กระทบยอดเก่า
		Total:      menuItem.Price * int64(req.Quantity),
		OrderID:    o.ID,
		MenuItemID: menuItem.ID,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrderItem(tx, &item); err != nil {
			return err
		}
		return s.Repo.AddToTotal(tx, o.ID, item.Total)
	})
	if err != nil {
		return nil, err
	}

	item.MenuItem = *menuItem
	return &item, nil
}

// ----- Checkout -----

// เช็คบิลได้เสมอ แม้ order หมดเวลาไปแล้ว — ปิดรับรายการอย่างเดียว
func (s *OrderService) Checkout(orderID uint) (*CheckoutRes, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if o.IsCheckedOut {
		return nil, ErrAlreadyCheckedOut
	}

	affected, err := s.Repo.CheckoutGuard(o.ID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// แพ้ race ให้คำขอเช็คบิลอีกอัน
		return nil, ErrAlreadyCheckedOut
	}

	o, err = s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	return &CheckoutRes{OrderID: o.ID, TotalAmount: o.TotalAmount}, nil
}

// ----- เวลา -----

// เช็คหมดเวลาแบบ lazy: แตะ order เมื่อไหร่ค่อยปิด ไม่มี background timer
// คืน true ถ้า order ยังรับรายการได้
func (s *OrderService) checkAndExpire(o *entity.Order) (bool, error) {
	if !o.IsActive || o.IsCheckedOut {
		return o.IsActive && !o.IsCheckedOut, nil
	}
	if s.remaining(o) <= 0 {
		if _, err := s.Repo.DeactivateGuard(o.ID); err != nil {
			return false, err
		}
		o.IsActive = false
		return false, nil
	}
	return true, nil
}

func (s *OrderService) remaining(o *entity.Order) time.Duration {
	return s.SessionDuration - s.Now().UTC().Sub(o.StartTime)
}

func (s *OrderService) remainingSeconds(o *entity.Order) int64 {
	if !o.IsActive || o.IsCheckedOut {
		return 0
	}
	remaining := s.remaining(o)
	if remaining < 0 {
		return 0
	}
	return int64(remaining / time.Second)
}
