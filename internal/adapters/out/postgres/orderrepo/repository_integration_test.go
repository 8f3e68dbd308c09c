package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderDirectoryIntegrationTestSuite checks the mapping of orders rows against
// a PostgreSQL container.
type OrderDirectoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	directory *orderrepo.GormOrderDirectory
}

func (suite *OrderDirectoryIntegrationTestSuite) SetupSuite() {
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

func (suite *OrderDirectoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.directory = orderrepo.NewGormOrderDirectory(suite.db)
}

func (suite *OrderDirectoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderDirectoryIntegrationTestSuite) TestSaveAndGet_CompleteBooking() {
	ctx := suite.T().Context()
	address, err := kernel.NewAddress(kernel.AddressFields{
		Recipient:  "Asha Rao",
		Line1:      "12 MG Road",
		City:       "Bengaluru",
		PostalCode: "560001",
		Country:    "IN",
	})
	suite.Require().NoError(err)

	details, err := order.NewFabricDetails(kernel.MustNewActorID("seller-1"), "silk")
	suite.Require().NoError(err)
	tailorID := kernel.MustNewActorID("tailor-1")

	o, err := order.RestoreOrder(kernel.NewUUID(), order.CompleteBooking,
		kernel.MustNewActorID("customer-1"), address, &details, &tailorID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.directory.Save(ctx, o))

	got, err := suite.directory.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.CompleteBooking, got.BookingType())
	suite.Equal(address, got.Address())
	suite.Require().NotNil(got.Fabric())
	suite.Equal("seller-1", got.Fabric().SellerID().String())
	suite.Equal("silk", got.Fabric().FabricName())
	suite.Require().NotNil(got.TailorID())
	suite.Equal("tailor-1", got.TailorID().String())
}

func (suite *OrderDirectoryIntegrationTestSuite) TestGet_TailorBookingWithoutAddress() {
	ctx := suite.T().Context()
	o, err := order.RestoreOrder(kernel.NewUUID(), order.TailorBooking,
		kernel.MustNewActorID("customer-1"), kernel.Address{}, nil, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.directory.Save(ctx, o))

	got, err := suite.directory.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Nil(got.Fabric())
	suite.Nil(got.TailorID())
	suite.True(got.Address().IsZero())
}

func (suite *OrderDirectoryIntegrationTestSuite) TestGet_UnknownOrder_NotFound() {
	_, err := suite.directory.Get(suite.T().Context(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderDirectoryIntegrationTestSuite) TestAll_ReturnsEveryOrder() {
	ctx := suite.T().Context()
	for range 3 {
		o, err := order.RestoreOrder(kernel.NewUUID(), order.TailorBooking,
			kernel.MustNewActorID("customer"), kernel.Address{}, nil, nil)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.directory.Save(ctx, o))
	}

	orders, err := suite.directory.All(ctx)
	suite.Require().NoError(err)
	suite.Len(orders, 3)
}

func (suite *OrderDirectoryIntegrationTestSuite) TestAll_BadRow_ReturnsError() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.db.Create(&orderrepo.OrderDTO{
		ID:          kernel.NewUUID().Bytes(),
		BookingType: "subscription",
		CustomerID:  "customer",
	}).Error)

	_, err := suite.directory.All(ctx)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func TestOrderDirectoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderDirectoryIntegrationTestSuite))
}
