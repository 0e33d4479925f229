package agv

// WarehouseID wajib terisi: AGV selalu milik tepat satu warehouse.
type AGV struct {
	ID          uint    `gorm:"column:agv_id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:agv_name;type:varchar(100)"`
	Code        string  `gorm:"column:agv_code;type:varchar(50);not null"`
	Model       string  `gorm:"column:agv_model;type:varchar(100);not null"`
	Footnote    *string `gorm:"column:agv_footnote;type:text"`
	WarehouseID uint    `gorm:"column:warehouse_id;not null;index"`
}

func (AGV) TableName() string {
	return "agvs"
}
