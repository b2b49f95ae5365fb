// repository/menu_repository.go
package repository

import (
	"github.com/somchx/buffet-ordering-system/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ดึงเฉพาะเมนูที่ยังขายอยู่
func (r *MenuRepository) FindAvailable() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Where("is_available = ?", true).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) CreateBatch(items []entity.MenuItem) error {
	return r.DB.Create(&items).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

// soft delete: ปิดการขายอย่างเดียว เก็บ record ไว้ให้ order เก่าอ้างถึงได้
func (r *MenuRepository) Disable(id uint) error {
	return r.DB.Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Update("is_available", false).Error
}

func (r *MenuRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.MenuItem{}).Count(&n).Error
	return n, err
}
