// services/menu_service.go
package services

import (
	"errors"

	"github.com/somchx/buffet-ordering-system/entity"
	"github.com/somchx/buffet-ordering-system/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// ----- DTO from Controller -----
type MenuItemReq struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl"`
	IsAvailable *bool  `json:"isAvailable"` // ไม่ส่งมา = true
}

func (s *MenuService) ListAvailable() ([]entity.MenuItem, error) {
	return s.Repo.FindAvailable()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Create(req *MenuItemReq) (*entity.MenuItem, error) {
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}
	item := entity.MenuItem{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if err := s.Repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// PUT = แทนค่าทั้งตัวแบบ full update
func (s *MenuService) Update(id uint, req *MenuItemReq) (*entity.MenuItem, error) {
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	item.Name = req.Name
	item.Category = req.Category
	item.Price = req.Price
	item.ImageURL = req.ImageURL
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	} else {
		item.IsAvailable = true
	}
	if err := s.Repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// ลบเมนู = ปิดการขายเท่านั้น order item เก่ายังชี้ถึง record เดิมได้
func (s *MenuService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Disable(id)
}

// Seed ใส่เมนูตั้งต้นครั้งเดียว — มีข้อมูลอยู่แล้วไม่ทำอะไร
func (s *MenuService) Seed(items []entity.MenuItem) (bool, error) {
	n, err := s.Repo.Count()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := s.Repo.CreateBatch(items); err != nil {
		return false, err
	}
	return true, nil
}
