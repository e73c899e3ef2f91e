package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/T0MGL/0rdefy-sub010/internal/adapters/out/postgres/orderrepo"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/order"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_lines").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createConfirmedOrder("ORD-1001")

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertLineCount(2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrderWithLines() {
	ctx := context.Background()

	originalOrder := suite.createConfirmedOrder("ORD-1002")

	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	err := suite.repository.Add(ctx, originalOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal("ORD-1002", retrievedOrder.Number())
	suite.Equal("Dana Smith", retrievedOrder.CustomerName())
	suite.Equal(order.Confirmed, retrievedOrder.Status())
	suite.Nil(retrievedOrder.Session())
	suite.Len(retrievedOrder.Lines(), 2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentID := kernel.NewUUID()
	retrievedOrder, err := suite.repository.Get(ctx, nonExistentID)

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_FulfillmentLifecycle() {
	ctx := context.Background()

	testOrder := suite.createConfirmedOrder("ORD-1003")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(4)

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Claim the order for a session
	sessionID := kernel.NewUUID()
	suite.Require().NoError(testOrder.EnterFulfillment(sessionID))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	claimed, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InFulfillment, claimed.Status())
	suite.Require().NotNil(claimed.Session())
	suite.Equal(sessionID, *claimed.Session())

	// Release it back to the eligible pool
	suite.Require().NoError(testOrder.ReleaseFromFulfillment())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	released, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, released.Status())
	suite.Nil(released.Session())

	// Claim again and advance to fulfilled
	suite.Require().NoError(testOrder.EnterFulfillment(sessionID))
	suite.Require().NoError(testOrder.CompleteFulfillment())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	fulfilled, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Fulfilled, fulfilled.Status())
	suite.Require().NotNil(fulfilled.Session())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	nonExistentOrder := suite.createConfirmedOrder("ORD-1004")

	// No expectations on tracker since operation should fail

	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByIDsForUpdate_AllExist_ReturnsOrdersSortedByID() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	orders := []*order.Order{
		suite.createConfirmedOrder("ORD-2001"),
		suite.createConfirmedOrder("ORD-2002"),
		suite.createConfirmedOrder("ORD-2003"),
	}
	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		suite.Require().NoError(suite.repository.Add(ctx, o))
		ids = append(ids, o.ID())
	}

	retrieved, err := suite.repository.GetByIDsForUpdate(ctx, ids)
	suite.Require().NoError(err)
	suite.Len(retrieved, 3)

	for i := range len(retrieved) - 1 {
		suite.Less(retrieved[i].ID().String(), retrieved[i+1].ID().String())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByIDsForUpdate_MissingOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	existing := suite.createConfirmedOrder("ORD-2004")
	suite.tracker.On("TrackAggregate", existing.ID(), existing).Once()
	suite.Require().NoError(suite.repository.Add(ctx, existing))

	missing := kernel.NewUUID()
	retrieved, err := suite.repository.GetByIDsForUpdate(ctx, []kernel.UUID{existing.ID(), missing})

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

// TestOrderRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with invalid UUID",
			operation: func() error {
				invalidID := kernel.UUID{}
				_, err := suite.repository.Get(context.Background(), invalidID)
				return err
			},
			expected: "required",
		},
		{
			name: "get non-existent order",
			operation: func() error {
				nonExistentID := kernel.NewUUID()
				_, err := suite.repository.Get(context.Background(), nonExistentID)
				return err
			},
			expected: "not found",
		},
		{
			name: "lock with empty ID list",
			operation: func() error {
				_, err := suite.repository.GetByIDsForUpdate(context.Background(), nil)
				return err
			},
			expected: "required",
		},
		{
			name: "update non-existent order",
			operation: func() error {
				return suite.repository.Update(context.Background(), suite.createConfirmedOrder("ORD-9999"))
			},
			expected: "record not found",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

// TestOrderRepository_Concurrency verifies repository behavior under concurrent access.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_Concurrency() {
	ctx := context.Background()

	initialOrder := suite.createConfirmedOrder("ORD-3001")
	suite.tracker.On("TrackAggregate", initialOrder.ID(), initialOrder).Once()
	err := suite.repository.Add(ctx, initialOrder)
	suite.Require().NoError(err)

	// Simulate concurrent reads
	results := make(chan *order.Order, 3)
	errors := make(chan error, 3)

	for range 3 {
		go func() {
			retrievedOrder, readErr := suite.repository.Get(ctx, initialOrder.ID())
			if readErr != nil {
				errors <- readErr
			} else {
				results <- retrievedOrder
			}
		}()
	}

	// Collect results
	for range 3 {
		select {
		case result := <-results:
			suite.Equal(initialOrder.ID(), result.ID())
		case readErr := <-errors:
			suite.Failf("Unexpected error in concurrent read", "%v", readErr)
		}
	}

	suite.tracker.AssertExpectations(suite.T())
}

// createConfirmedOrder creates a confirmed test order with two lines.
func (suite *OrderRepositoryIntegrationTestSuite) createConfirmedOrder(number string) *order.Order {
	mug, err := order.NewLine(kernel.NewUUID(), "Ceramic Mug", 2)
	suite.Require().NoError(err)
	poster, err := order.NewLine(kernel.NewUUID(), "Poster A2", 1)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), number, "Dana Smith", []order.Line{mug, poster})
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertLineCount verifies the number of order lines in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertLineCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderLineDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
