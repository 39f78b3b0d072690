package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/thomasdhughes/realworld/config"
	"github.com/thomasdhughes/realworld/internal/model"
)

var db *gorm.DB

// InitDatabase 按配置初始化数据库连接并迁移表结构
func InitDatabase() {
	databaseConf := config.Conf.Database

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel(databaseConf.LogLevel)),
	}

	var err error
	switch databaseConf.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(postgresDSN(&databaseConf)), gormConfig)
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(databaseConf.Path), gormConfig)
	default:
		log.Fatalf("不支持的数据库驱动: %s", databaseConf.Driver)
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database connection: %v", err)
	}
	if databaseConf.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(databaseConf.MaxIdleConns)
	}
	if databaseConf.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(databaseConf.MaxOpenConns)
	}
	if databaseConf.MaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(databaseConf.MaxLifetime) * time.Second)
	}

	// 初始化数据库表
	if err := model.InitTable(db); err != nil {
		log.Fatalf("Failed to initialize database tables: %v", err)
	}

	log.Println("Database connection established successfully")
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return db
}

func postgresDSN(c *config.DatabaseConfig) string {
	host := c.Host
	if host == "" {
		host = "localhost"
	}
	port := c.Port
	if port == 0 {
		port = 5432
	}

	sslmode := "disable"
	if c.SSLMode {
		sslmode = "require"
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
		host, c.Username, c.Password, c.Database, port, sslmode)
}

func logLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	default:
		return logger.Info
	}
}
