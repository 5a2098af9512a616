package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/deliveryrepo"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/vacationrepo"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vacation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAvailableDriversQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAvailableDriversQueryHandler
}

func (suite *GetAvailableDriversQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&driverrepo.DriverDTO{},
		&deliveryrepo.DeliveryDTO{},
		&vacationrepo.VacationDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAvailableDriversQueryHandler(db)
}

func (suite *GetAvailableDriversQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAvailableDriversQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE deliveries, drivers, vacations").Error
	suite.Require().NoError(err)
}

func (suite *GetAvailableDriversQueryHandlerTestSuite) TestHandle_ExcludesDriversOnApprovedVacation() {
	working := suite.saveAvailDriver("Kim Cheol-su", "010-1111-2222")
	vacationing := suite.saveAvailDriver("Lee Young-hee", "010-3333-4444")
	pendingRequest := suite.saveAvailDriver("Park Min-jun", "010-5555-6666")

	date := kernel.Today().AddDays(3)

	suite.saveVacation(vacationing.ID(), date.AddDays(-1), date.AddDays(2), true)
	// Pending request must not block availability.
	suite.saveVacation(pendingRequest.ID(), date.AddDays(-1), date.AddDays(2), false)

	query, err := queries.NewGetAvailableDriversQuery(date)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	// Ordered by name, vacationing driver absent.
	suite.Equal("Kim Cheol-su", result[0].Name)
	suite.True(working.ID().IsEqual(result[0].ID))
	suite.Equal("Park Min-jun", result[1].Name)
}

func (suite *GetAvailableDriversQueryHandlerTestSuite) TestHandle_ExcludesDriversNotActive() {
	active := suite.saveAvailDriver("Kim Cheol-su", "010-1111-2222")
	inactive := suite.saveAvailDriver("Lee Young-hee", "010-3333-4444")
	suite.setDriverStatus(inactive, driver.Inactive)
	resting := suite.saveAvailDriver("Park Min-jun", "010-5555-6666")
	suite.setDriverStatus(resting, driver.OnVacation)

	query, err := queries.NewGetAvailableDriversQuery(kernel.Today().AddDays(3))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.True(active.ID().IsEqual(result[0].ID))
}

func (suite *GetAvailableDriversQueryHandlerTestSuite) TestHandle_VacationBoundariesAreInclusive() {
	drv := suite.saveAvailDriver("Kim Cheol-su", "010-1111-2222")

	start := kernel.Today().AddDays(5)
	end := kernel.Today().AddDays(8)
	suite.saveVacation(drv.ID(), start, end, true)

	for _, tc := range []struct {
		name      string
		date      kernel.Date
		available bool
	}{
		{"day before start", start.AddDays(-1), true},
		{"first day", start, false},
		{"last day", end, false},
		{"day after end", end.AddDays(1), true},
	} {
		suite.Run(tc.name, func() {
			query, err := queries.NewGetAvailableDriversQuery(tc.date)
			suite.Require().NoError(err)

			result, err := suite.handler.Handle(context.Background(), query)
			suite.Require().NoError(err)

			if tc.available {
				suite.Len(result, 1)
			} else {
				suite.Empty(result)
			}
		})
	}
}

func (suite *GetAvailableDriversQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetAvailableDriversQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAvailableDriversQuery constructor")
}

func (suite *GetAvailableDriversQueryHandlerTestSuite) saveAvailDriver(name, phone string) *driver.Driver {
	drv, err := driver.NewDriver(
		kernel.NewUUID(),
		name,
		phone,
		"34나5678",
		"Truck",
		decimal.RequireFromString("5.0"),
		kernel.NewDate(2023, time.March, 1),
	)
	suite.Require().NoError(err)

	repo := driverrepo.NewGormDriverRepository(suite.db, &noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), drv))
	return drv
}

func (suite *GetAvailableDriversQueryHandlerTestSuite) setDriverStatus(drv *driver.Driver, status driver.Status) {
	suite.Require().NoError(drv.SetStatus(status))

	repo := driverrepo.NewGormDriverRepository(suite.db, &noopTracker{})
	suite.Require().NoError(repo.Update(context.Background(), drv))
}

func (suite *GetAvailableDriversQueryHandlerTestSuite) saveVacation(
	driverID kernel.UUID, start, end kernel.Date, approved bool,
) {
	v, err := vacation.NewVacation(kernel.NewUUID(), driverID, start, end, "family visit")
	suite.Require().NoError(err)
	if approved {
		suite.Require().NoError(v.Approve())
	}

	repo := vacationrepo.NewGormVacationRepository(suite.db, &noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), v))
}

func TestGetAvailableDriversQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAvailableDriversQueryHandlerTestSuite))
}
