package postgresqltest

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// TestDatabaseSetup wraps a migrated connection to the test database.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and applies migrations. The
// test is skipped when the variable is unset.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 4})
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, db.Migrate(ctx))

	setup := &TestDatabaseSetup{DB: db}
	require.NoError(t, setup.TruncateAllTables(ctx))
	t.Cleanup(setup.Close)
	return setup
}

// TruncateAllTables removes all data from the budget tables.
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"users",
		"employees",
		"master_rates",
		"holidays",
		"special_assist_items",
		"special_assist_ledgers",
		"overtime_items",
		"overtime_ledgers",
		"budget_items",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

// Close closes the database connection.
func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
