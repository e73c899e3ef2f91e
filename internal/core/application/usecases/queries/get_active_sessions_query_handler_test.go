package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/T0MGL/0rdefy-sub010/internal/adapters/out/postgres/sessionrepo"
	"github.com/T0MGL/0rdefy-sub010/internal/core/application/usecases/queries"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/order"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/session"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetActiveSessionsQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetActiveSessionsQueryHandler
	sessionRepo *sessionrepo.GormSessionRepository
}

func (suite *GetActiveSessionsQueryHandlerTestSuite) SetupSuite() {
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
		&sessionrepo.SessionDTO{},
		&sessionrepo.MemberDTO{},
		&sessionrepo.PickRequirementDTO{},
		&sessionrepo.PackingLineDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveSessionsQueryHandler(db)
	suite.sessionRepo = sessionrepo.NewGormSessionRepository(db, &mockAggregateTracker{})
}

func (suite *GetActiveSessionsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveSessionsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE sessions CASCADE").Error
	suite.Require().NoError(err)
	err = suite.db.Exec("TRUNCATE TABLE session_members, session_pick_requirements, session_packing_lines").Error
	suite.Require().NoError(err)
}

func (suite *GetActiveSessionsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveSessionsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveSessionsQueryHandlerTestSuite) TestHandle_RunningSessions_ReturnsNewestFirstWithOrderCount() {
	older := suite.addSession(2)
	suite.backdate(older, time.Now().Add(-time.Hour))

	newer := suite.addSession(1)

	query := queries.NewGetActiveSessionsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(newer.ID(), result[0].ID)
	suite.Equal(newer.Code().String(), result[0].Code)
	suite.Equal("Picking", result[0].Status)
	suite.Equal(1, result[0].OrderCount)

	suite.Equal(older.ID(), result[1].ID)
	suite.Equal(2, result[1].OrderCount)
}

func (suite *GetActiveSessionsQueryHandlerTestSuite) TestHandle_PackingSession_IsIncluded() {
	sess := suite.addSession(1)

	for _, requirement := range sess.PickRequirements() {
		suite.Require().NoError(sess.SetPicked(requirement.ProductID(), requirement.TotalQuantityNeeded()))
	}
	suite.Require().NoError(sess.FinishPicking())
	suite.Require().NoError(suite.sessionRepo.Update(context.Background(), sess))

	query := queries.NewGetActiveSessionsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Packing", result[0].Status)
}

func (suite *GetActiveSessionsQueryHandlerTestSuite) TestHandle_TerminalSessions_AreExcluded() {
	active := suite.addSession(1)

	cancelled := suite.addSession(1)
	suite.Require().NoError(cancelled.Cancel())
	suite.Require().NoError(suite.sessionRepo.Update(context.Background(), cancelled))

	completed := suite.addSession(1)
	for _, requirement := range completed.PickRequirements() {
		suite.Require().NoError(completed.SetPicked(requirement.ProductID(), requirement.TotalQuantityNeeded()))
	}
	suite.Require().NoError(completed.FinishPicking())
	for _, line := range completed.PackingLines() {
		for range line.QuantityNeeded() {
			suite.Require().NoError(completed.PackOne(line.OrderID(), line.ProductID()))
		}
	}
	suite.Require().NoError(completed.Complete())
	suite.Require().NoError(suite.sessionRepo.Update(context.Background(), completed))

	query := queries.NewGetActiveSessionsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(active.ID(), result[0].ID)
}

func (suite *GetActiveSessionsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveSessionsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveSessionsQuery constructor")
}

// addSession stores a fresh picking session over the given number of
// single-line orders.
func (suite *GetActiveSessionsQueryHandlerTestSuite) addSession(orderCount int) *session.Session {
	orders := make([]*order.Order, 0, orderCount)
	for i := range orderCount {
		line, err := order.NewLine(kernel.NewUUID(), "Ceramic Mug", 1)
		suite.Require().NoError(err)

		ord, err := order.NewOrder(kernel.NewUUID(), fmt.Sprintf("ORD-%04d", i+1), "Dana Smith", []order.Line{line})
		suite.Require().NoError(err)
		orders = append(orders, ord)
	}

	code, err := kernel.GenerateCode()
	suite.Require().NoError(err)

	sess, err := session.NewSession(kernel.NewUUID(), code, orders)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.sessionRepo.Add(context.Background(), sess))

	return sess
}

// backdate pushes a session's creation timestamp into the past so ordering
// assertions are deterministic.
func (suite *GetActiveSessionsQueryHandlerTestSuite) backdate(sess *session.Session, createdAt time.Time) {
	err := suite.db.Exec(
		"UPDATE sessions SET created_at = ? WHERE id = ?",
		createdAt, sess.ID().Bytes(),
	).Error
	suite.Require().NoError(err)
}

func TestGetActiveSessionsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveSessionsQueryHandlerTestSuite))
}
