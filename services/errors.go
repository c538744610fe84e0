package services

import "errors"

// Engine failures are sentinel errors so handlers can map each one to a
// single user-facing message with errors.Is. None of them are retryable;
// they describe the submitted data, not a transient fault.
var (
	ErrDuplicateYardName = errors.New("a yard with this name already exists")
	ErrYardHasSpots      = errors.New("yard still has spots")

	ErrInvalidSpotCode   = errors.New("spot code must be one letter followed by two digits")
	ErrDuplicateSpotCode = errors.New("a spot with this code already exists in the yard")
	ErrSpotOccupied      = errors.New("spot is occupied by another motorcycle")

	ErrInvalidModel           = errors.New("model must be POP, SPORT or E")
	ErrInvalidPlate           = errors.New("plate must match AAA9999 or AAA9A99")
	ErrDuplicatePlate         = errors.New("a motorcycle with this plate already exists")
	ErrUnknownYard            = errors.New("yard does not exist")
	ErrSpotWithoutYard        = errors.New("a spot assignment requires a yard")
	ErrUnknownSpot            = errors.New("spot does not exist in the yard")
	ErrMaintenanceWithoutSpot = errors.New("maintenance requires a yard and spot assignment")
)
