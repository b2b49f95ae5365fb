package configs

import (
	"github.com/somchx/buffet-ordering-system/entity"
)

// เมนูบุฟเฟต์ตั้งต้น — ราคา 0 เพราะคิดเหมาหัว ยกเว้นจะตั้งราคาเพิ่มทีหลัง
func DefaultMenu() []entity.MenuItem {
	return []entity.MenuItem{
		{Name: "ข้าวผัด", Category: "อาหารจานหลัก", IsAvailable: true, ImageURL: "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=400"},
		{Name: "ผัดไทย", Category: "อาหารจานหลัก", IsAvailable: true, ImageURL: "https://images.unsplash.com/photo-1559314809-0d155014e29e?w=400"},
		{Name: "ส้มตำ", Category: "อาหารจานหลัก", IsAvailable: true, ImageURL: "https://images.unsplash.com/photo-1559847844-d3c037269e93?w=400"},
		{Name: "ไก่ทอด", Category: "อาหารจานหลัก", IsAvailable: true, ImageURL: "https://images.unsplash.com/photo-1626082927389-6cd097cdc6ec?w=400"},
		{Name: "ปลาทอด", Category: "อาหารจานหลัก", IsAvailable: true, ImageURL: "https://images.unsplash.com/photo-1534604973900-c43ab4c2e0ab?w=400"},
		{Name: "ยำวุ้นเส้น", Category: "ยำ", IsAvailable: true, ImageURL: "https://images.unsplash.com/photo-1559847844-56910d405dad?w=400"},
		{Name: "ต้มยำกุ้ง", Category: "ต้ม", IsAvailable: true, ImageURL: "https://images.unsplash.com/photo-1548943487-a2e4e43b4853?w=400"},
		{Name: "น้ำอัดลม", Category: "เครื่องดื่ม", IsAvailable: true, ImageURL: "https://images.unsplash.com/photo-1581006852262-e4307cf6283a?w=400"},
		{Name: "น้ำผลไม้", Category: "เครื่องดื่ม", IsAvailable: true, ImageURL: "https://images.unsplash.com/photo-1546173159-315724a31696?w=400"},
		{Name: "ไอศกรีม", Category: "ของหวาน", IsAvailable: true, ImageURL: "https://images.unsplash.com/photo-1563805042-7684c019e1cb?w=400"},
	}
}
