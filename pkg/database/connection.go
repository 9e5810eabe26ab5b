package database

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/NIRESH7/garments-backend/config"
	"github.com/NIRESH7/garments-backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect() {
	dsn := BuildDSN()

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Connection pooling configuration
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established successfully")
}

// BuildDSN prefers DATABASE_URL (common on managed hosts), converting
// mysql:// or mariadb:// URLs to DSN format, and otherwise assembles the DSN
// from the individual DB_* settings.
func BuildDSN() string {
	cfg := config.AppConfig.Database

	if cfg.URL != "" {
		dsn := cfg.URL
		if strings.HasPrefix(dsn, "mysql://") || strings.HasPrefix(dsn, "mariadb://") {
			raw := strings.TrimPrefix(strings.TrimPrefix(dsn, "mysql://"), "mariadb://")

			// Standard URL: user:pass@host:port/dbname
			// DSN: user:pass@tcp(host:port)/dbname?params
			parts := strings.SplitN(raw, "@", 2)
			if len(parts) == 2 {
				creds := parts[0]
				hostParts := strings.SplitN(parts[1], "/", 2)
				if len(hostParts) == 2 {
					hostPort := hostParts[0]
					dbName := hostParts[1]
					params := "?charset=utf8mb4&parseTime=True&loc=Local"
					if strings.Contains(dbName, "?") {
						dbParts := strings.SplitN(dbName, "?", 2)
						dbName = dbParts[0]
						params = "?" + dbParts[1]
					}
					dsn = fmt.Sprintf("%s@tcp(%s)/%s%s", creds, hostPort, dbName, params)
				}
			}
		}
		return dsn
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// Migrate runs AutoMigrate for every model the app persists.
func Migrate() error {
	return DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.LoginHistory{},
		&models.Category{},
		&models.Party{},
		&models.ItemGroup{},
		&models.Lot{},
		&models.InwardReceipt{},
		&models.DiaEntry{},
		&models.OutwardDispatch{},
		&models.DocumentSequence{},
	)
}
