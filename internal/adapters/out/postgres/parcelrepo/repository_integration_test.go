package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"lifecycle/internal/adapters/out/postgres/parcelrepo"
	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/parcel"
	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ParcelRepositoryIntegrationTestSuite provides integration tests for
// ParcelRepository using PostgreSQL containers to verify persistence and the
// conditional status write.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *parcelrepo.GormParcelRepository
	tracker    *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}))
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_ValidParcel_Success() {
	ctx := context.Background()

	testParcel := suite.createTestParcel()
	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Once()

	err := suite.repository.Add(ctx, testParcel)
	suite.Require().NoError(err)

	suite.assertParcelCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_ExistingParcel_ReturnsParcel() {
	ctx := context.Background()

	testParcel := suite.createTestParcel()
	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testParcel))

	loaded, err := suite.repository.Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.True(testParcel.IsEqual(loaded))
	suite.Equal(status.PendingArrival, loaded.Status())
	suite.Equal(testParcel.TrackingNumber(), loaded.TrackingNumber())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_MissingParcel_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdateStatus_MatchingCurrent_Succeeds() {
	ctx := context.Background()

	testParcel := suite.createTestParcel()
	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testParcel))

	changedAt := time.Now().UTC().Truncate(time.Second)
	err := suite.repository.UpdateStatus(
		ctx, testParcel.ID(), status.PendingArrival, status.Arrived, changedAt)
	suite.Require().NoError(err)

	loaded, err := suite.repository.Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal(status.Arrived, loaded.Status())
	suite.WithinDuration(changedAt, loaded.StatusChangedAt(), time.Second)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdateStatus_StaleCurrent_ReturnsVersionInvalid() {
	ctx := context.Background()

	testParcel := suite.createTestParcel()
	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testParcel))

	// Stored status is pending_arrival; the caller read something older.
	err := suite.repository.UpdateStatus(
		ctx, testParcel.ID(), status.Arrived, status.Inspected, time.Now())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrVersionIsInvalid)

	// The row must be untouched.
	loaded, err := suite.repository.Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal(status.PendingArrival, loaded.Status())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdateStatus_MissingParcel_ReturnsNotFound() {
	ctx := context.Background()

	err := suite.repository.UpdateStatus(
		ctx, kernel.NewUUID(), status.PendingArrival, status.Arrived, time.Now())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAllInStatus_FiltersByStatus() {
	ctx := context.Background()

	pending := suite.createTestParcel()
	arrived := suite.createTestParcel()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, pending))
	suite.Require().NoError(suite.repository.Add(ctx, arrived))
	suite.Require().NoError(suite.repository.UpdateStatus(
		ctx, arrived.ID(), status.PendingArrival, status.Arrived, time.Now()))

	inPending, err := suite.repository.GetAllInStatus(ctx, status.PendingArrival)
	suite.Require().NoError(err)
	suite.Len(inPending, 1)
	suite.True(pending.IsEqual(inPending[0]))

	inArrived, err := suite.repository.GetAllInStatus(ctx, status.Arrived)
	suite.Require().NoError(err)
	suite.Len(inArrived, 1)
	suite.True(arrived.IsEqual(inArrived[0]))
}

func (suite *ParcelRepositoryIntegrationTestSuite) createTestParcel() *parcel.Parcel {
	p, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewUUID(), "1Z999AA10123456784", time.Now().UTC())
	suite.Require().NoError(err)
	return p
}

// assertParcelCount verifies the number of parcels in the database.
func (suite *ParcelRepositoryIntegrationTestSuite) assertParcelCount(expected int) {
	var count int64
	err := suite.db.Model(&parcelrepo.ParcelDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
