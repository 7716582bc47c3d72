package database

import (
	"fmt"
	"time"

	"tourhub/config"
	"tourhub/model"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

func ConnectDB() error {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.ConfigDefault("DB_HOST", "localhost"),
		config.ConfigInt("DB_PORT", 5432),
		config.Config("DB_USER"),
		config.Config("DB_PASSWORD"),
		config.Config("DB_NAME"),
		config.ConfigDefault("DB_SSLMODE", "disable"),
	)

	db, err := Open(postgres.Open(dsn), gormlogger.Warn)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("db.DB(): %w", err)
	}
	sqlDB.SetMaxOpenConns(config.ConfigInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(config.ConfigInt("DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxLifetime(time.Duration(config.ConfigInt("DB_CONN_MAX_LIFETIME_MIN", 30)) * time.Minute)

	log.Info().Msg("Connection opened to database")

	if err := Migrate(db); err != nil {
		return err
	}
	log.Info().Msg("Database migrated")

	if config.Config("SEED_DATA") == "true" {
		if err := SeedData(db); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	DB = db
	return nil
}

// Open wraps gorm.Open with the settings every connection in the app shares.
func Open(dialector gorm.Dialector, level gormlogger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Account{},
		&model.Category{},
		&model.Tour{},
		&model.Booking{},
		&model.BlogPost{},
		&model.ContactSubmission{},
		&model.NewsletterSubscription{},
		&model.StaticContent{},
	)
}
