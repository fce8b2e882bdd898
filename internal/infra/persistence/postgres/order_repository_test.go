package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils/tests"
)

// capturingLogger records every SQL statement GORM builds, so tests can
// assert on the generated queries without a live database.
type capturingLogger struct {
	statements []string
}

func (l *capturingLogger) LogMode(logger.LogLevel) logger.Interface      { return l }
func (l *capturingLogger) Info(context.Context, string, ...interface{})  {}
func (l *capturingLogger) Warn(context.Context, string, ...interface{})  {}
func (l *capturingLogger) Error(context.Context, string, ...interface{}) {}
func (l *capturingLogger) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	l.statements = append(l.statements, sql)
}

func (l *capturingLogger) findStatement(t *testing.T, fragment string) string {
	t.Helper()
	for _, sql := range l.statements {
		if strings.Contains(sql, fragment) {
			return sql
		}
	}
	t.Fatalf("no captured statement contains %q; captured: %v", fragment, l.statements)

	return ""
}

func newDryRunDB(t *testing.T) (*gorm.DB, *capturingLogger) {
	t.Helper()
	captured := &capturingLogger{}
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true, Logger: captured})
	require.NoError(t, err)

	return db, captured
}

func TestOrderRepository_Stats_RevenueSumsAllOrders(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewOrderRepository(db)

	_, err := repo.Stats(context.Background(), 5)
	require.NoError(t, err)

	// Revenue covers every order, cancelled ones included, so the sum
	// must not carry a status predicate.
	revenueSQL := captured.findStatement(t, "SUM(grand_total)")
	assert.NotContains(t, revenueSQL, "status")

	// The per-status counters do filter.
	pendingSQL := captured.findStatement(t, "pending")
	assert.Contains(t, pendingSQL, "status")
	completedSQL := captured.findStatement(t, "delivered")
	assert.Contains(t, completedSQL, "status")
}

func TestOrderRepository_Stats_RecentOrdersQuery(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewOrderRepository(db)

	_, err := repo.Stats(context.Background(), 5)
	require.NoError(t, err)

	recentSQL := captured.findStatement(t, "created_at DESC")
	assert.Contains(t, recentSQL, "LIMIT")
}
