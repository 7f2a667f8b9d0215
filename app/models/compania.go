package models

// Compania is one company of the squadron. Codigo, Turno and Color are
// presentation fields derived at the gateway; the backend only stores
// descripcion and uid.
type Compania struct {
	ID      string   `json:"id"`
	Nombre  string   `json:"nombre"`
	Codigo  string   `json:"codigo"`
	Turno   string   `json:"turno"`
	Color   string   `json:"color"`
	Cadetes []Cadete `json:"cadetes,omitempty"`
}
