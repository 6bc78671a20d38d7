package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/s-sucharita/Multi-Vendor-Marketplace/models"
)

// PostgresConfig carries the connection parameters for the primary store.
type PostgresConfig struct {
	User     string
	Password string
	DBName   string
	Host     string
	Port     string
	SSLMode  string
	TimeZone string
}

// migratedModels lists every aggregate AutoMigrate manages at startup.
var migratedModels = []interface{}{
	&models.User{},
	&models.Product{},
	&models.Order{},
	&models.OrderItem{},
	&models.OrderMessage{},
	&models.Payment{},
	&models.Notification{},
	&models.Inventory{},
	&models.Review{},
	&models.ReturnRequest{},
	&models.Dispute{},
	&models.VendorMessage{},
	&models.LeaveRequest{},
	&models.AdminTask{},
	&models.PerformanceGoal{},
	&models.VendorCompliance{},
	&models.ActivityLog{},
}

// ConnectPostgres opens the primary store with retries and runs migrations.
func ConnectPostgres(cfg PostgresConfig, logger *zap.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone,
	)

	var db *gorm.DB
	var err error

	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			sqlDB, poolErr := db.DB()
			if poolErr == nil {
				sqlDB.SetMaxOpenConns(25)
				sqlDB.SetMaxIdleConns(5)
				sqlDB.SetConnMaxLifetime(5 * time.Minute)
			}

			logger.Info("Connected to PostgreSQL successfully")

			if err := db.AutoMigrate(migratedModels...); err != nil {
				return nil, fmt.Errorf("AutoMigrate failed: %w", err)
			}
			return db, nil
		}

		logger.Warn("DB connection failed, retrying",
			zap.Int("attempt", i+1),
			zap.Error(err),
		)
		time.Sleep(time.Duration(i+1) * 2 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect to PostgreSQL after retries: %w", err)
}
