package models

// MotorcycleModel is one of the three fleet models in circulation.
type MotorcycleModel string

const (
	ModelPop   MotorcycleModel = "POP"
	ModelSport MotorcycleModel = "SPORT"
	ModelE     MotorcycleModel = "E"
)

// MotorcycleStatus is derived from a motorcycle's placement and
// maintenance flag. It is never persisted.
type MotorcycleStatus string

const (
	StatusAvailable        MotorcycleStatus = "Disponível"
	StatusRented           MotorcycleStatus = "Alugada"
	StatusUnderMaintenance MotorcycleStatus = "Manutenção"
)

// SpotStatus is derived from the motorcycle list on every read.
type SpotStatus string

const (
	SpotAvailable        SpotStatus = "Disponível"
	SpotOccupied         SpotStatus = "Ocupada"
	SpotUnderMaintenance SpotStatus = "Manutenção"
)

// Role controls which screens the mobile client routes a user to.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleYardOperator Role = "OPERADOR_PATIO"
)
