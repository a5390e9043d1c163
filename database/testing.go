package database

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func ConnectTestDB() (*gorm.DB, error) {
	gormConfig := gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	}
	return gorm.Open(sqlite.Open(":memory:"), &gormConfig)
}

func ConnectAndInitializeTestDB() (*gorm.DB, error) {
	db, err := ConnectTestDB()
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(entities...)
	if err != nil {
		return nil, err
	}
	return db, nil
}
