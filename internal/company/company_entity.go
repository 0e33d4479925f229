package company

type Company struct {
	ID   uint   `gorm:"column:company_id;primaryKey;autoIncrement"`
	Name string `gorm:"column:company_name;type:varchar(150);not null"`
}

func (Company) TableName() string {
	return "companies"
}
