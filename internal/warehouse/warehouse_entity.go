package warehouse

// Warehouse menyimpan company FK sebagai kolom id (model relasional),
// bukan object association; resolusi object hanya terjadi di service layer.
// Code adalah shared secret yang harus dibuktikan user saat signup.
type Warehouse struct {
	ID        uint   `gorm:"column:warehouse_id;primaryKey;autoIncrement"`
	Name      string `gorm:"column:warehouse_name;type:varchar(150);not null"`
	Code      string `gorm:"column:warehouse_code;type:varchar(50);not null"`
	CompanyID uint   `gorm:"column:company_id;not null;index"`
}

func (Warehouse) TableName() string {
	return "warehouses"
}
