package queries_test

import (
	"context"
	"testing"
	"time"

	"lifecycle/internal/adapters/out/postgres/parcelrepo"
	"lifecycle/internal/core/application/usecases/queries"
	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/parcel"
	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/core/domain/workflow"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding test data.
type mockAggregateTracker struct{}

func (t *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetOverdueParcelsQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	handler    queries.GetOverdueParcelsQueryHandler
	parcelRepo *parcelrepo.GormParcelRepository
}

func (suite *GetOverdueParcelsQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}))

	suite.handler = queries.NewGetOverdueParcelsQueryHandler(db, workflow.NewDurationPolicy())
	suite.parcelRepo = parcelrepo.NewGormParcelRepository(db, &mockAggregateTracker{})
}

func (suite *GetOverdueParcelsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOverdueParcelsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels").Error
	suite.Require().NoError(err)
}

func (suite *GetOverdueParcelsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetOverdueParcelsQuery(time.Now())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOverdueParcelsQueryHandlerTestSuite) TestHandle_MixedDwells_ReturnsOnlyOverdue() {
	now := time.Now().UTC()

	// Expected dwell in arrived is 48 hours.
	fresh := suite.seedParcel(status.Arrived, now.Add(-1*time.Hour))
	stale := suite.seedParcel(status.Arrived, now.Add(-72*time.Hour))
	// Final statuses have no dwell expectation and never surface.
	suite.seedParcel(status.Delivered, now.Add(-1000*time.Hour))
	// Customer-wait statuses are indefinite.
	suite.seedParcel(status.PendingAction, now.Add(-1000*time.Hour))

	query, err := queries.NewGetOverdueParcelsQuery(now)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(stale.ID()))
	suite.False(result[0].ID.IsEqual(fresh.ID()))
	suite.Equal(status.Arrived, result[0].Status)
	suite.Equal(48*time.Hour, result[0].Expected)
	suite.InDelta((24 * time.Hour).Hours(), result[0].OverdueBy.Hours(), 0.01)
}

func (suite *GetOverdueParcelsQueryHandlerTestSuite) TestHandle_ExactBoundary_IsNotOverdue() {
	now := time.Now().UTC()

	// Exactly at the 48 hour expectation: not overdue.
	suite.seedParcel(status.Arrived, now.Add(-48*time.Hour))

	query, err := queries.NewGetOverdueParcelsQuery(now)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetOverdueParcelsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOverdueParcelsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOverdueParcelsQuery constructor")
}

func (suite *GetOverdueParcelsQueryHandlerTestSuite) seedParcel(
	value status.Value,
	statusChangedAt time.Time,
) *parcel.Parcel {
	p, err := parcel.RestoreParcel(
		kernel.NewUUID(), kernel.NewUUID(), "1Z999AA10123456784", value, statusChangedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.parcelRepo.Add(context.Background(), p))
	return p
}

func TestGetOverdueParcelsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOverdueParcelsQueryHandlerTestSuite))
}
