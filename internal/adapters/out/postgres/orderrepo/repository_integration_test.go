package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"printworks/internal/adapters/out/postgres/orderrepo"
	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/order"
	"printworks/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL instance, including the version-conditional update.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder() *order.Order {
	print, err := kernel.NewMoney(250000)
	suite.Require().NoError(err)

	noRevisions := 0
	pricing := order.Pricing{
		Design:       kernel.ZeroMoney(),
		Validation:   kernel.ZeroMoney(),
		Print:        print,
		Total:        print,
		MaxRevisions: &noRevisions,
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.PlanPublic, 25, "", false,
		"12 Azadi St, Tehran", "", pricing)
	suite.Require().NoError(err)

	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.newOrder()

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(aggregate.ID()))
	suite.True(loaded.CustomerID().IsEqual(aggregate.CustomerID()))
	suite.Equal(order.PlanPublic, loaded.Plan())
	suite.Equal(order.StatusPending, loaded.Status())
	suite.Equal(25, loaded.Quantity())
	suite.Equal(int64(250000), loaded.TotalPrice().Amount())
	suite.Equal(1, loaded.Version())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", aggregate.ID(), aggregate)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_BumpsVersion() {
	ctx := context.Background()
	aggregate := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.SetAdminNotes("rush job"))

	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal("rush job", reloaded.AdminNotes())
	suite.Equal(2, reloaded.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflict() {
	ctx := context.Background()
	aggregate := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	first, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.SetAdminNotes("first writer"))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.SetAdminNotes("second writer"))
	err = suite.repository.Update(ctx, second)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrVersionIsInvalid)

	reloaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal("first writer", reloaded.AdminNotes())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingRow_ReturnsConflict() {
	err := suite.repository.Update(context.Background(), suite.newOrder())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_PreservesAssignmentsAndTimestamps() {
	ctx := context.Background()
	aggregate := suite.newOrder()

	printshopID := kernel.NewUUID()
	suite.Require().NoError(aggregate.Assign(order.StaffPrintshop, printshopID))
	suite.Require().NoError(aggregate.MarkReadyForPrint())
	acceptedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	suite.Require().NoError(aggregate.AcceptByPrintshop(printshopID, acceptedAt))

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusPrinting, loaded.Status())
	suite.Require().NotNil(loaded.Printshop())
	suite.True(loaded.Printshop().IsEqual(printshopID))
	suite.Require().NotNil(loaded.AcceptedAt())
	suite.True(loaded.AcceptedAt().Equal(acceptedAt))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
