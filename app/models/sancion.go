package models

// Ref is a catalog reference: sanction types (HTE, HDM, HAF, DTE...) and
// durations ("1".."8", "DIA") both come as {id, descripcion} pairs.
type Ref struct {
	ID          string `json:"id"`
	Descripcion string `json:"descripcion"`
}

// GetDescripcion lets the field normalizer read a Ref like any other
// descripcion-bearing value.
func (r Ref) GetDescripcion() string {
	return r.Descripcion
}

// Sancion is one disciplinary sanction as shown in tables.
type Sancion struct {
	UID       string `json:"uid"`
	Fecha     string `json:"fecha"`
	Estado    bool   `json:"estado"`
	Tipo      Ref    `json:"tipo"`
	Duracion  Ref    `json:"duracion"`
	Autoridad string `json:"autoridad,omitempty"`
}

// EstadoTexto maps the wire boolean to the label users see.
func (s Sancion) EstadoTexto() string {
	if s.Estado {
		return "ACTIVA"
	}
	return "CUMPLIDA"
}

// ResumenAlumno is the per-cadet sanction summary served by the backend
// for the self-service view.
type ResumenAlumno struct {
	Alumno         string    `json:"alumno"`
	Compania       string    `json:"compania"`
	Grado          string    `json:"grado"`
	Guardia        int       `json:"guardia"`
	TotalSanciones int       `json:"total_sanciones"`
	Sanciones      []Sancion `json:"sanciones"`
}

// CadeteSanciones groups one roster entry with its sanctions, as listed
// in the company-wide sanctions modal and the export.
type CadeteSanciones struct {
	Cadete         string    `json:"cadete"`
	Guardia        int       `json:"guardia"`
	TotalSanciones int       `json:"total_sanciones"`
	Sanciones      []Sancion `json:"sanciones"`
}
