package warehouse

// WarehouseResponse sengaja tidak pernah memuat Code: kolom itu adalah
// secret verifikasi signup, bukan data untuk client.
type WarehouseResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
