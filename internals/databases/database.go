package database

import (
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Srinivaspandrala/server-hrm/internals/configs"
)

var DB *gorm.DB

func ConnectDB() {
	file := configs.GetEnv("DB_FILE", "HRMdb1.db")
	log.Printf("🔌 Opening database file %s ...", file)

	// WAL keeps readers unblocked during the attendance writes; busy_timeout
	// covers the short write lock contention sqlite has under load.
	dsn := file + "?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Failed to open database: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	// sqlite serializes writes; a small pool avoids SQLITE_BUSY storms
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}
