package models

// Motorcycle is a fleet vehicle, optionally parked at a (yard, spot) pair.
// Yard is referenced by name and spot by code; both are weak references
// resolved against the current snapshot. Status is not stored — it is
// derived from the placement and maintenance flag on every read.
type Motorcycle struct {
	ID          int             `json:"id_moto"`
	Model       MotorcycleModel `json:"modelo"`
	Plate       string          `json:"placa"`
	YardName    string          `json:"patio,omitempty"`
	SpotCode    string          `json:"vaga,omitempty"`
	Maintenance bool            `json:"manutencao"`
}

// Placed reports whether the motorcycle holds a yard+spot assignment.
func (m Motorcycle) Placed() bool {
	return m.YardName != "" && m.SpotCode != ""
}
