package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetVacationsQueryIsNotConstructed = errors.New(
	"GetVacationsQuery must be created via NewGetVacationsQuery constructor",
)

// GetVacationsQuery retrieves vacation requests, optionally filtered to a
// single driver.
type GetVacationsQuery struct { //nolint:recvcheck //using for validation
	driverID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVacationsQuery creates a query for every vacation request.
func NewGetVacationsQuery() GetVacationsQuery {
	return GetVacationsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetVacationsByDriverQuery creates a query for one driver's requests.
func NewGetVacationsByDriverQuery(driverID kernel.UUID) (GetVacationsQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetVacationsQuery{}, err
	}

	return GetVacationsQuery{
		driverID: &driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetVacationsQuery) Validate() error {
	return q.guard.Validate(ErrGetVacationsQueryIsNotConstructed)
}

// DriverID returns the driver filter, nil when listing all requests.
func (q GetVacationsQuery) DriverID() *kernel.UUID {
	return q.driverID
}
