package services

import (
	"errors"
	"testing"

	"github.com/somchx/buffet-ordering-system/entity"
)

func TestMenuCreateDefaultsToAvailable(t *testing.T) {
	_, menuSvc, _ := setup(t)

	item, err := menuSvc.Create(&MenuItemReq{Name: "ข้าวผัด", Category: "อาหารจานหลัก", Price: 40})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !item.IsAvailable {
		t.Fatalf("new menu item should default to available")
	}

	unavailable := false
	item2, err := menuSvc.Create(&MenuItemReq{Name: "เมนูลับ", Category: "อื่นๆ", IsAvailable: &unavailable})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item2.IsAvailable {
		t.Fatalf("explicit isAvailable=false ignored")
	}
}

func TestMenuCreateNegativePrice(t *testing.T) {
	_, menuSvc, _ := setup(t)

	if _, err := menuSvc.Create(&MenuItemReq{Name: "x", Category: "y", Price: -1}); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestMenuUpdate(t *testing.T) {
	_, menuSvc, _ := setup(t)
	item, _ := menuSvc.Create(&MenuItemReq{Name: "น้ำอัดลม", Category: "เครื่องดื่ม", Price: 20})

	updated, err := menuSvc.Update(item.ID, &MenuItemReq{Name: "น้ำอัดลม (รีฟิล)", Category: "เครื่องดื่ม", Price: 25})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "น้ำอัดลม (รีฟิล)" || updated.Price != 25 {
		t.Fatalf("update not applied: %+v", updated)
	}

	if _, err := menuSvc.Update(999, &MenuItemReq{Name: "x", Category: "y"}); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("update missing: got %v", err)
	}
}

func TestMenuSoftDelete(t *testing.T) {
	_, menuSvc, _ := setup(t)
	item, _ := menuSvc.Create(&MenuItemReq{Name: "ยำวุ้นเส้น", Category: "ยำ", Price: 0})

	if err := menuSvc.Delete(item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// record ยังอยู่ แค่ปิดการขาย
	got, err := menuSvc.Get(item.ID)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got.IsAvailable {
		t.Fatalf("soft delete did not disable item")
	}

	list, err := menuSvc.ListAvailable()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, m := range list {
		if m.ID == item.ID {
			t.Fatalf("disabled item still listed")
		}
	}

	if err := menuSvc.Delete(999); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("delete missing: got %v", err)
	}
}

func TestMenuSeedIdempotent(t *testing.T) {
	_, menuSvc, _ := setup(t)
	seed := []entity.MenuItem{
		{Name: "ข้าวผัด", Category: "อาหารจานหลัก", IsAvailable: true},
		{Name: "ต้มยำกุ้ง", Category: "ต้ม", IsAvailable: true},
	}

	created, err := menuSvc.Seed(seed)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !created {
		t.Fatalf("first seed should create data")
	}

	created, err = menuSvc.Seed(seed)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if created {
		t.Fatalf("second seed should be a no-op")
	}

	list, _ := menuSvc.ListAvailable()
	if len(list) != 2 {
		t.Fatalf("menu count after double seed: got %d, want 2", len(list))
	}
}
