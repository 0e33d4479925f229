package tenant

import "gorm.io/gorm"

// CompanyScope membatasi query ke satu company.
func CompanyScope(companyID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// WarehouseScope membatasi query ke satu warehouse.
func WarehouseScope(warehouseID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("warehouse_id = ?", warehouseID)
	}
}
