package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"transit_manage/internal/models"
)

// DSN builds the postgres data source name from cfg.
func (cfg Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode, cfg.DBTimezone,
	)
}

// GormConfig is shared by every dialector the store is opened with.
// Constraint faults are translated to gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated.
func GormConfig(log gormlogger.Interface) *gorm.Config {
	return &gorm.Config{
		Logger:         log,
		TranslateError: true,
	}
}

// OpenDB opens the shared store handle. Release it with CloseDB.
func OpenDB(cfg Config, log gormlogger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), GormConfig(log))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)

	return db, nil
}

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Company{},
		&models.Fleet{},
		&models.Route{},
		&models.Member{},
		&models.Bus{},
		&models.Stop{},
		&models.StopRoute{},
		&models.Violation{},
		&models.ViolationRecord{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}

// CloseDB releases the pool behind db.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
