package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"entregaloya/internal/adapters/out/postgres/orderrepo"
	"entregaloya/internal/core/domain/model/order"
	"entregaloya/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsID() {
	ctx := context.Background()

	customerID := int64(7)
	testOrder, err := order.NewOrder(&customerID, 3, nil, "dos empanadas", 2)
	suite.Require().NoError(err)

	id, err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)
	suite.Positive(id)

	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsAllFields() {
	ctx := context.Background()

	customerID := int64(7)
	productID := int64(5)
	testOrder, err := order.NewOrder(&customerID, 3, &productID, "dos empanadas", 2)
	suite.Require().NoError(err)

	id, err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Equal(id, retrieved.ID())
	suite.Equal(customerID, *retrieved.CustomerID())
	suite.Equal(int64(3), retrieved.BusinessID())
	suite.Equal(productID, *retrieved.ProductID())
	suite.Equal("dos empanadas", retrieved.Message())
	suite.Equal(2, retrieved.Quantity())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Empty(retrieved.Response())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_AnonymousFreeTextOrder() {
	ctx := context.Background()

	testOrder, err := order.NewOrder(nil, 3, nil, "lo que tengan", 1)
	suite.Require().NoError(err)

	id, err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Nil(retrieved.CustomerID())
	suite.Nil(retrieved.ProductID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 999)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransitionPersists() {
	ctx := context.Background()

	customerID := int64(7)
	testOrder, err := order.NewOrder(&customerID, 3, nil, "dos empanadas", 2)
	suite.Require().NoError(err)

	id, err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	stored, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Require().NoError(stored.UpdateStatus(order.Confirmed, "listo en 20 minutos"))
	suite.Require().NoError(suite.repository.Update(ctx, stored))

	retrieved, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrieved.Status())
	suite.Equal("listo en 20 minutos", retrieved.Response())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()

	testOrder, err := order.NewOrder(nil, 3, nil, "hola", 1)
	suite.Require().NoError(err)

	id, err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Delete(ctx, id))
	suite.assertOrderCount(0)

	// Deleting again is a no-op.
	suite.Require().NoError(suite.repository.Delete(ctx, id))
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
