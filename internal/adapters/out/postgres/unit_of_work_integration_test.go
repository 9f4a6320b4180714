package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "agrimarket/internal/adapters/out/postgres"
	"agrimarket/internal/adapters/out/postgres/orderrepo"
	"agrimarket/internal/adapters/out/postgres/productrepo"
	"agrimarket/internal/adapters/out/postgres/trackingrepo"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/domain/model/tracking"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{},
		&trackingrepo.TrackingDTO{}, &trackingrepo.EventDTO{},
		&productrepo.ProductDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_line_items, tracking_records, tracking_events, products",
	).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreate_InstancesAreIsolated() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.TrackingRepository())
	suite.NotNil(uow2.ProductRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "repeated begin must be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx), "commit without transaction must fail")
	suite.Require().Error(uow.Rollback(ctx), "rollback without transaction must fail")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrderAndTracking() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	testOrder := suite.createTestOrder(now)
	record, err := tracking.NewTracking(testOrder.ID(), now)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.TrackingRepository().Add(ctx, record))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	persisted, err := check.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), persisted.ID())

	persistedRecord, err := check.TrackingRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), persistedRecord.OrderID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	testOrder := suite.createTestOrder(now)
	record, err := tracking.NewTracking(testOrder.ID(), now)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.TrackingRepository().Add(ctx, record))
	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	_, err = check.OrderRepository().Get(ctx, testOrder.ID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	_, err = check.TrackingRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(now time.Time) *order.Order {
	item, err := order.NewLineItem(
		kernel.NewUUID(), kernel.NewUUID(), "Basmati Rice", "kg", 2, kernel.MustMoney("75"),
	)
	suite.Require().NoError(err)

	address, err := order.NewAddress("14 MG Road", "Pune", "411001", "+91-98220-00000")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		[]order.LineItem{item},
		address, "",
		order.PaymentOnline,
		order.DefaultPricingPolicy(),
		now,
	)
	suite.Require().NoError(err)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
