package agvlog

import "time"

// AGVLog adalah record telemetri per AGV, diurutkan berdasarkan LogTime.
// Belum ada jalur ingestion; data masuk dari proses provisioning terpisah.
type AGVLog struct {
	ID          uint      `gorm:"column:log_id;primaryKey;autoIncrement"`
	LogCode     int       `gorm:"column:log_code"`
	LocationX   float32   `gorm:"column:location_x"`
	LocationY   float32   `gorm:"column:location_y"`
	Efficiency  float32   `gorm:"column:efficiency"`
	State       string    `gorm:"column:state;type:varchar(50)"`
	Significant string    `gorm:"column:significant;type:varchar(50)"`
	LogTime     time.Time `gorm:"column:log_time;not null;index"`
	AGVID       uint      `gorm:"column:agv_id;not null;index"`
}

func (AGVLog) TableName() string {
	return "agv_logs"
}
