package user

// Password selalu berisi bcrypt hash, tidak pernah plaintext.
// Unique index pada Email adalah penjaga terakhir terhadap signup ganda
// yang lolos pre-check bersamaan.
type User struct {
	ID          uint   `gorm:"column:user_id;primaryKey;autoIncrement"`
	Email       string `gorm:"column:email;type:varchar(255);uniqueIndex:uq_user_email;not null"`
	Password    string `gorm:"column:password;type:varchar(255);not null"`
	Name        string `gorm:"column:user_name;type:varchar(100);not null"`
	PhoneNumber string `gorm:"column:phone_number;type:varchar(30)"`
	WarehouseID uint   `gorm:"column:warehouse_id;not null;index"`
}

func (User) TableName() string {
	return "users"
}
