package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ledgercloud/ledgercloud/internal/shared/logger"
)

// newMockDB opens a gorm connection backed by sqlmock.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

// testLogger satisfies logger.Interface without producing output.
type testLogger struct{}

func (testLogger) Debug(string, ...any)            {}
func (testLogger) Info(string, ...any)             {}
func (testLogger) Warn(string, ...any)             {}
func (testLogger) Error(string, ...any)            {}
func (testLogger) Fatal(string, ...any)            {}
func (l testLogger) With(...any) logger.Interface  { return l }
func (l testLogger) Named(string) logger.Interface { return l }
func (testLogger) Debugw(string, ...interface{})   {}
func (testLogger) Infow(string, ...interface{})    {}
func (testLogger) Warnw(string, ...interface{})    {}
func (testLogger) Errorw(string, ...interface{})   {}
func (testLogger) Fatalw(string, ...interface{})   {}
