package dao

import (
	"time"

	"lb-front/entity/pojo"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SqliteInit 初始化Sqlite
func SqliteInit(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	//自动创建local_storage表
	err = db.AutoMigrate(&pojo.StoragePO{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB() //数据库连接池
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db, nil
}
