package agv

type RegisterAGVRequest struct {
	Name        string  `json:"name"`
	Code        string  `json:"code" binding:"required"`
	Model       string  `json:"model" binding:"required"`
	Footnote    *string `json:"footnote"`
	WarehouseID uint    `json:"warehouse_id" binding:"required"`
}

// Partial update: field kosong/nil tidak mengubah nilai tersimpan.
type UpdateAGVRequest struct {
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Model       string  `json:"model"`
	Footnote    *string `json:"footnote"`
	WarehouseID uint    `json:"warehouse_id"`
}

type AGVResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Model       string  `json:"model"`
	Footnote    *string `json:"footnote,omitempty"`
	WarehouseID uint    `json:"warehouse_id"`
}
