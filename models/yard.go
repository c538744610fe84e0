package models

// Yard is a physical facility ("pátio") containing parking spots.
// Names are unique, compared case- and accent-insensitively.
type Yard struct {
	ID      int    `json:"id_patio"`
	Name    string `json:"nome"`
	Address string `json:"endereco"`
}

// YardOccupancy is the derived spot inventory of a yard. It is computed
// fresh from the spot and motorcycle lists on every read.
type YardOccupancy struct {
	TotalSpots     int `json:"totalVagas"`
	AvailableSpots int `json:"vagasDisponiveis"`
}
