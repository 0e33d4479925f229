package company

// CompanyResponse adalah proyeksi publik: id dan nama saja.
type CompanyResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
