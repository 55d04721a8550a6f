// SPDX-License-Identifier: GPL-3.0-only

package db

import (
	"fmt"
	"quickchat/commons"
	"quickchat/migrations"
	"quickchat/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the database selected by cfg.StoreBackend. Anything other
// than postgres or mysql is treated as SQLite at cfg.DBPath.
func InitDB(cfg commons.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	var dbInfo string
	dialect := cfg.StoreBackend

	switch dialect {
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("POSTGRES_DSN environment variable is required for postgres backend")
		}
		commons.Logger.Debug("Connecting to PostgreSQL database")
		dialector = postgres.Open(cfg.PostgresDSN)
		dbInfo = "PostgreSQL database (DSN hidden)"
	case "mysql":
		if cfg.MySQLDSN == "" {
			return nil, fmt.Errorf("MYSQL_DSN environment variable is required for mysql backend")
		}
		commons.Logger.Debug("Connecting to MySQL database")
		dialector = mysql.Open(cfg.MySQLDSN)
		dbInfo = "MySQL database (DSN hidden)"
	default:
		commons.Logger.Debug("Connecting to SQLite database at", cfg.DBPath)
		dialector = sqlite.Open(cfg.DBPath)
		dialect = "sqlite"
		dbInfo = cfg.DBPath
	}

	conn, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialect, err)
	}
	commons.Logger.Infof("Database connection established. %s %s, %s %s",
		"dialect:", dialect,
		"database:", dbInfo,
	)
	return conn, nil
}

func MigrateDB(conn *gorm.DB) error {
	commons.Logger.Info("Running database migrations")
	m := gormigrate.New(conn, gormigrate.DefaultOptions, migrations.List())
	m.InitSchema(func(tx *gorm.DB) error {
		return tx.AutoMigrate(models.AllModels...)
	})
	if err := m.Migrate(); err != nil {
		commons.Logger.Error("Database migration failed:", err)
		return fmt.Errorf("database migration failed: %w", err)
	}
	commons.Logger.Info("Database migration completed")
	return nil
}
