package historyrepo_test

import (
	"context"
	"testing"
	"time"

	"medlogistics/internal/adapters/out/postgres/historyrepo"
	"medlogistics/internal/core/domain/model/audit"
	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/core/domain/model/workflow"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// HistoryRepositoryIntegrationTestSuite provides integration tests for the
// append-only audit trail using PostgreSQL containers.
type HistoryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *historyrepo.GormHistoryRepository
}

func (suite *HistoryRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&historyrepo.HistoryDTO{}))
}

func (suite *HistoryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_history").Error)
	suite.repository = historyrepo.NewGormHistoryRepository(suite.db)
}

func (suite *HistoryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *HistoryRepositoryIntegrationTestSuite) appendEntry(
	orderID kernel.UUID,
	from, to workflow.Status,
	changedAt time.Time,
) *audit.Entry {
	entry, err := audit.RestoreEntry(kernel.NewUUID(), orderID, from, to,
		"ops-7", workflow.RoleOperationsManager, changedAt, "step", false,
		audit.Metadata{IP: "10.0.0.4", Agent: "portal"})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Append(context.Background(), entry))
	return entry
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestAppend_PersistsEntry() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	entry, err := audit.NewEntry(orderID, workflow.StatusCreated, workflow.StatusPendingApproval,
		"user-17", workflow.RoleCommercial, "first submission", audit.Metadata{Location: "Bogota DC"})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Append(ctx, entry))

	entries, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.True(entries[0].ID().IsEqual(entry.ID()))
	suite.Equal("first submission", entries[0].Notes())
	suite.Equal("Bogota DC", entries[0].Metadata().Location)
	suite.False(entries[0].IsRollback())
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestAppend_RollbackEntryRoundTrips() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	entry, err := audit.NewRollbackEntry(orderID, workflow.StatusTemplatesReady, workflow.StatusApproved,
		"admin-3", workflow.RoleAdministrator, "duplicate paperwork", audit.Metadata{})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Append(ctx, entry))

	entries, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.True(entries[0].IsRollback())
	suite.Equal("ROLLBACK: duplicate paperwork", entries[0].Notes())
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestGetByOrder_NewestFirst() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	base := time.Now().Add(-3 * time.Hour).UTC().Truncate(time.Microsecond)

	suite.appendEntry(orderID, workflow.StatusCreated, workflow.StatusPendingApproval, base)
	suite.appendEntry(orderID, workflow.StatusPendingApproval, workflow.StatusApproved, base.Add(time.Hour))
	suite.appendEntry(orderID, workflow.StatusApproved, workflow.StatusDoctorConfirmation, base.Add(2*time.Hour))

	// Another order's trail must not leak in.
	suite.appendEntry(kernel.NewUUID(), workflow.StatusCreated, workflow.StatusPendingApproval, base)

	entries, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)
	suite.Equal(workflow.StatusDoctorConfirmation, entries[0].ToStatus())
	suite.Equal(workflow.StatusApproved, entries[1].ToStatus())
	suite.Equal(workflow.StatusPendingApproval, entries[2].ToStatus())
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestGetByOrder_NoHistory_ReturnsEmpty() {
	entries, err := suite.repository.GetByOrder(context.Background(), kernel.NewUUID())

	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *HistoryRepositoryIntegrationTestSuite) TestGetAll_OldestFirst() {
	ctx := context.Background()
	base := time.Now().Add(-2 * time.Hour).UTC().Truncate(time.Microsecond)

	suite.appendEntry(kernel.NewUUID(), workflow.StatusPendingApproval, workflow.StatusApproved, base.Add(time.Hour))
	suite.appendEntry(kernel.NewUUID(), workflow.StatusCreated, workflow.StatusPendingApproval, base)

	entries, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal(workflow.StatusPendingApproval, entries[0].ToStatus())
	suite.Equal(workflow.StatusApproved, entries[1].ToStatus())
}

func TestHistoryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryRepositoryIntegrationTestSuite))
}
