package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/vacation"

	"github.com/shopspring/decimal"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateDeliveryRequest is the body for registering a delivery. Historical
// deliveries are backfilled directly in completed status and must name the
// driver who carried them out.
type CreateDeliveryRequest struct {
	Destination  string          `json:"destination"`
	Address      string          `json:"address"`
	Price        decimal.Decimal `json:"price"`
	FeedTonnage  decimal.Decimal `json:"feed_tonnage"`
	DeliveryDate string          `json:"delivery_date"`
	Notes        string          `json:"notes"`
	Historical   bool            `json:"historical"`
	DriverID     string          `json:"driver_id,omitempty"`
}

// UpdateDeliveryRequest is the body for editing a delivery's details.
type UpdateDeliveryRequest struct {
	Destination  string          `json:"destination"`
	Address      string          `json:"address"`
	Price        decimal.Decimal `json:"price"`
	FeedTonnage  decimal.Decimal `json:"feed_tonnage"`
	DeliveryDate string          `json:"delivery_date"`
	Notes        string          `json:"notes"`
}

// AssignDeliveryRequest names the driver to assign.
type AssignDeliveryRequest struct {
	DriverID string `json:"driver_id"`
}

// CreateDriverRequest is the body for registering a driver.
type CreateDriverRequest struct {
	Name          string          `json:"name"`
	PhoneNumber   string          `json:"phone_number"`
	VehicleNumber string          `json:"vehicle_number"`
	VehicleType   string          `json:"vehicle_type"`
	Tonnage       decimal.Decimal `json:"tonnage"`
	JoinDate      string          `json:"join_date"`
}

// UpdateDriverRequest is the body for editing a driver's profile.
type UpdateDriverRequest struct {
	Name          string          `json:"name"`
	PhoneNumber   string          `json:"phone_number"`
	VehicleNumber string          `json:"vehicle_number"`
	VehicleType   string          `json:"vehicle_type"`
	Tonnage       decimal.Decimal `json:"tonnage"`
}

// RequestVacationRequest is the body for filing a vacation request.
type RequestVacationRequest struct {
	DriverID  string `json:"driver_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// Delivery is the wire representation of a delivery.
type Delivery struct {
	ID           string          `json:"id"`
	Destination  string          `json:"destination"`
	Address      string          `json:"address"`
	Price        decimal.Decimal `json:"price"`
	FeedTonnage  decimal.Decimal `json:"feed_tonnage"`
	DeliveryDate string          `json:"delivery_date"`
	DriverID     *string         `json:"driver_id"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	AssignedAt   *time.Time      `json:"assigned_at"`
	StartedAt    *time.Time      `json:"started_at"`
	CompletedAt  *time.Time      `json:"completed_at"`
	Notes        string          `json:"notes"`
}

// Driver is the wire representation of a driver.
type Driver struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PhoneNumber   string          `json:"phone_number"`
	VehicleNumber string          `json:"vehicle_number"`
	VehicleType   string          `json:"vehicle_type"`
	Tonnage       decimal.Decimal `json:"tonnage"`
	Status        string          `json:"status"`
	JoinDate      string          `json:"join_date"`
}

// Vacation is the wire representation of a vacation request.
type Vacation struct {
	ID          string `json:"id"`
	DriverID    string `json:"driver_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
	RequestDate string `json:"request_date"`
}

// Recommendation is the wire representation of a driver recommendation.
type Recommendation struct {
	Found            bool            `json:"found"`
	DriverID         string          `json:"driver_id,omitempty"`
	DriverName       string          `json:"driver_name,omitempty"`
	Tonnage          decimal.Decimal `json:"tonnage,omitempty"`
	RecentDeliveries int             `json:"recent_deliveries,omitempty"`
}

// RevenueSummary is the wire representation of one driver's monthly totals.
type RevenueSummary struct {
	DriverID           string          `json:"driver_id"`
	DriverName         string          `json:"driver_name"`
	Month              string          `json:"month"`
	DeliveryCount      int             `json:"delivery_count"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	TotalTonnage       decimal.Decimal `json:"total_tonnage"`
	AveragePerDelivery decimal.Decimal `json:"average_per_delivery"`
}

// SyncResult reports how many driver statuses disagree with the vacation
// calendar.
type SyncResult struct {
	Drifted int `json:"drifted"`
}

func deliveryFromAggregate(d *delivery.Delivery) Delivery {
	var driverID *string
	if id := d.Driver(); id != nil {
		s := id.String()
		driverID = &s
	}

	return Delivery{
		ID:           d.ID().String(),
		Destination:  d.Destination(),
		Address:      d.Address(),
		Price:        d.Price(),
		FeedTonnage:  d.FeedTonnage(),
		DeliveryDate: d.DeliveryDate().String(),
		DriverID:     driverID,
		Status:       d.Status().String(),
		CreatedAt:    d.CreatedAt(),
		AssignedAt:   d.AssignedAt(),
		StartedAt:    d.StartedAt(),
		CompletedAt:  d.CompletedAt(),
		Notes:        d.Notes(),
	}
}

func deliveryFromResponse(r queries.DeliveryResponse) Delivery {
	var driverID *string
	if r.DriverID != nil {
		s := r.DriverID.String()
		driverID = &s
	}

	return Delivery{
		ID:           r.ID.String(),
		Destination:  r.Destination,
		Address:      r.Address,
		Price:        r.Price,
		FeedTonnage:  r.FeedTonnage,
		DeliveryDate: r.DeliveryDate.String(),
		DriverID:     driverID,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
		AssignedAt:   r.AssignedAt,
		StartedAt:    r.StartedAt,
		CompletedAt:  r.CompletedAt,
		Notes:        r.Notes,
	}
}

func deliveriesFromResponses(rs []queries.DeliveryResponse) []Delivery {
	out := make([]Delivery, len(rs))
	for i, r := range rs {
		out[i] = deliveryFromResponse(r)
	}
	return out
}

func driverFromAggregate(d *driver.Driver) Driver {
	return Driver{
		ID:            d.ID().String(),
		Name:          d.Name(),
		PhoneNumber:   d.PhoneNumber(),
		VehicleNumber: d.VehicleNumber(),
		VehicleType:   d.VehicleType(),
		Tonnage:       d.Tonnage(),
		Status:        d.Status().String(),
		JoinDate:      d.JoinDate().String(),
	}
}

func driverFromResponse(r queries.DriverResponse) Driver {
	return Driver{
		ID:            r.ID.String(),
		Name:          r.Name,
		PhoneNumber:   r.PhoneNumber,
		VehicleNumber: r.VehicleNumber,
		VehicleType:   r.VehicleType,
		Tonnage:       r.Tonnage,
		Status:        r.Status,
		JoinDate:      r.JoinDate.String(),
	}
}

func driversFromResponses(rs []queries.DriverResponse) []Driver {
	out := make([]Driver, len(rs))
	for i, r := range rs {
		out[i] = driverFromResponse(r)
	}
	return out
}

func vacationFromAggregate(v *vacation.Vacation) Vacation {
	return Vacation{
		ID:          v.ID().String(),
		DriverID:    v.Driver().String(),
		StartDate:   v.StartDate().String(),
		EndDate:     v.EndDate().String(),
		Reason:      v.Reason(),
		Status:      v.Status().String(),
		RequestDate: v.RequestDate().String(),
	}
}

func vacationFromResponse(r queries.VacationResponse) Vacation {
	return Vacation{
		ID:          r.ID.String(),
		DriverID:    r.DriverID.String(),
		StartDate:   r.StartDate.String(),
		EndDate:     r.EndDate.String(),
		Reason:      r.Reason,
		Status:      r.Status,
		RequestDate: r.RequestDate.String(),
	}
}

func vacationsFromResponses(rs []queries.VacationResponse) []Vacation {
	out := make([]Vacation, len(rs))
	for i, r := range rs {
		out[i] = vacationFromResponse(r)
	}
	return out
}

func revenueFromSummaries(summaries []queries.MonthlyRevenueSummary) []RevenueSummary {
	out := make([]RevenueSummary, len(summaries))
	for i, s := range summaries {
		out[i] = RevenueSummary{
			DriverID:           s.DriverID.String(),
			DriverName:         s.DriverName,
			Month:              s.Month.String(),
			DeliveryCount:      s.DeliveryCount,
			TotalRevenue:       s.TotalRevenue,
			TotalTonnage:       s.TotalTonnage,
			AveragePerDelivery: s.AveragePerDelivery,
		}
	}
	return out
}

func recommendationFromResult(r queries.RecommendedDriver) Recommendation {
	rec := Recommendation{Found: r.Found}
	if r.Found {
		rec.DriverID = r.DriverID.String()
		rec.DriverName = r.DriverName
		rec.Tonnage = r.Tonnage
		rec.RecentDeliveries = r.RecentDeliveries
	}
	return rec
}
