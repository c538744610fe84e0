package models

// Spot is a single parking slot ("vaga"). The code is one letter followed
// by two digits, e.g. "A01", and is unique within its yard. A spot never
// moves to another yard.
type Spot struct {
	ID     int    `json:"id_vaga"`
	Code   string `json:"codigo"`
	YardID int    `json:"id_patio"`
}
