package agvlog

import "time"

type AGVLogResponse struct {
	ID          uint      `json:"id"`
	LogCode     int       `json:"log_code"`
	LocationX   float32   `json:"location_x"`
	LocationY   float32   `json:"location_y"`
	Efficiency  float32   `json:"efficiency"`
	State       string    `json:"state"`
	Significant string    `json:"significant"`
	LogTime     time.Time `json:"log_time"`
	AGVID       uint      `json:"agv_id"`
}
