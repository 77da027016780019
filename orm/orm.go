package orm

import (
	"fmt"
	"sync"
	"time"

	"portfolio/config"
	"portfolio/logutils"
	"portfolio/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	instance *gorm.DB
	once     sync.Once
)

// InitDB opens the postgres connection described by the config and migrates
// the schema. Safe to call more than once; only the first call dials.
func InitDB() error {
	var err error
	once.Do(func() {
		dbConfig := config.GetConfig()
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			dbConfig.Postgres.Host,
			dbConfig.Postgres.User,
			dbConfig.Postgres.Password,
			dbConfig.Postgres.DBName,
			dbConfig.Postgres.Port,
			dbConfig.Postgres.SSLMode,
			dbConfig.Postgres.TimeZone,
		)
		instance, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			instance = nil
			return
		}
		sqlDB, dbErr := instance.DB()
		if dbErr != nil {
			err = dbErr
			return
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)

		err = instance.AutoMigrate(&model.Project{})
	})
	return err
}

// DB returns the process-wide gorm handle. InitDB must have succeeded first.
func DB() *gorm.DB {
	if instance == nil {
		logutils.Log.Fatalf("database accessed before InitDB")
	}
	return instance
}
