// database_utils should be the canonical place to put shared DB utils.
// It should not include:
// 1. Any util that doesn't manipulate DB
// 2. Any util that contains business logic
package utils

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/Luismorlan/yatube/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	TestDBPrefix         = "testonlydb_"
	TestDBNameCharLength = 8

	PostgresDriver = "postgres"
	SqliteDriver   = "sqlite"
)

func isTempDB(dbName string) bool {
	return strings.HasPrefix(dbName, TestDBPrefix)
}

func randomTestDBName() string {
	return TestDBPrefix + RandomAlphabetString(TestDBNameCharLength)
}

// GetDBConnection get a connection to the database specified by env
func GetDBConnection() (*gorm.DB, error) {
	return GetCustomizedConnection(os.Getenv("DB_NAME"))
}

// GetCustomizedConnection connect to any db. DB_DRIVER selects the dialect,
// postgres is the default. For sqlite the db name is a file path.
func GetCustomizedConnection(dbName string) (*gorm.DB, error) {
	if os.Getenv("DB_DRIVER") == SqliteDriver {
		return getSqliteDB(sqliteFileDSN(dbName))
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASS"), dbName, os.Getenv("DB_PORT"))
	return getDB(postgres.Open(dsn))
}

func sqliteFileDSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=1", path)
}

func sqliteMemoryDSN(dbName string) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", dbName)
}

// Create a temp DB for testing, note that this function should only be called
// in a testing environment with test state manager testing.T
// Every temp DB is an isolated in-memory sqlite database, it lives as long as
// its single connection does and is gone after t.Cleanup closes it.
func CreateTempDB(t *testing.T) (*gorm.DB, string) {
	t.Helper()
	dbName := randomTestDBName()
	if !isTempDB(dbName) {
		t.Fatalf("invalid temp DB name: %s", dbName)
	}
	db, err := getSqliteDB(sqliteMemoryDSN(dbName))
	if err != nil {
		t.Fatalf("fail to create temp DB with name %s: %v", dbName, err)
	}
	DatabaseSetupAndMigration(db)
	t.Cleanup(func() {
		// Closing the last connection drops the in-memory database.
		conn, _ := db.DB()
		conn.Close()
	})

	return db, dbName
}

func getDB(dialector gorm.Dialector) (db *gorm.DB, err error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// sqlite allows one writer at a time, keep the pool at one connection so
// that writes never fail with "database is locked".
func getSqliteDB(dsn string) (*gorm.DB, error) {
	db, err := getDB(sqlite.Open(dsn))
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	return db, nil
}

// DatabaseSetupAndMigration creates or updates every table, including the
// foreign keys that implement cascade and nullify rules.
func DatabaseSetupAndMigration(db *gorm.DB) {
	err := db.AutoMigrate(&model.User{}, &model.Group{}, &model.Post{}, &model.Comment{}, &model.Follow{})
	if err != nil {
		panic("failed to migrate database: " + err.Error())
	}
}
