package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pool sizing for a single API instance plus the background sweeper and
// payment consumer. The sweeper runs on a timer and the consumer is a
// single goroutine, so the API keeps most of the pool.
const (
	maxIdleConns    = 10
	maxOpenConns    = 50
	connMaxLifetime = time.Hour
)

func sqlLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			// Listings carry addresses and owner contact data; keep
			// the values out of the SQL log.
			ParameterizedQueries: true,
			Colorful:             true,
		},
	)
}

// NewGormDBFromDSN opens the Postgres connection shared by the API
// server and the cmd/ tools.
func NewGormDBFromDSN(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: sqlLogger(),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	return db, nil
}
