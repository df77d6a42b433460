// Package sql provides a record source backed by a SQLite database.
package sql

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ardanlabs/roster/roster/app/sdk/roster"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	dbDirName  = "db"
	dbFileName = "roster.db"
)

// DB is a SQLite backed source of raw user records.
type DB struct {
	db *gorm.DB
}

type record struct {
	ID          uint64 `gorm:"primaryKey;column:id"`
	Username    string `gorm:"column:username"`
	Street      string `gorm:"column:street"`
	Suite       string `gorm:"column:suite"`
	City        string `gorm:"column:city"`
	Age         int    `gorm:"column:age"`
	CompanyName string `gorm:"column:company_name"`
}

// NewDB opens, creating if needed, the database under filePath.
func NewDB(filePath string) (*DB, error) {
	dbFileDir := filepath.Join(filePath, dbDirName)
	if err := os.MkdirAll(dbFileDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}

	fileName := filepath.Join(dbFileDir, dbFileName)
	db, err := gorm.Open(sqlite.Open(fileName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}

	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return &DB{db: db}, nil
}

// Name identifies where the records come from.
func (db *DB) Name() string {
	return "sqlite"
}

// Records returns every stored record in insertion order.
func (db *DB) Records(ctx context.Context) ([]roster.Record, error) {
	var recs []record
	if err := db.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}

	records := make([]roster.Record, len(recs))
	for i, rec := range recs {
		records[i] = roster.Record{
			Username: rec.Username,
			Address: roster.Address{
				Street: rec.Street,
				Suite:  rec.Suite,
				City:   rec.City,
			},
			Age: rec.Age,
			Company: roster.Company{
				Name: rec.CompanyName,
			},
		}
	}

	return records, nil
}

// InsertRecords stores the records in a single transaction.
func (db *DB) InsertRecords(ctx context.Context, records []roster.Record) error {
	if len(records) == 0 {
		return nil
	}

	recs := make([]record, len(records))
	for i, r := range records {
		recs[i] = record{
			Username:    r.Username,
			Street:      r.Address.Street,
			Suite:       r.Address.Suite,
			City:        r.Address.City,
			Age:         r.Age,
			CompanyName: r.Company.Name,
		}
	}

	res := db.db.WithContext(ctx).Create(&recs)
	if res.Error != nil {
		return fmt.Errorf("insert records: %w", res.Error)
	}

	return nil
}

// CleanTables drops and recreates the records table.
func (db *DB) CleanTables() error {
	if err := db.db.Migrator().DropTable(&record{}); err != nil {
		return fmt.Errorf("drop table: %w", err)
	}

	if err := db.db.AutoMigrate(&record{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return nil
}

// Close releases the underlying connection pool.
func (db *DB) Close() error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return fmt.Errorf("sql db: %w", err)
	}

	return sqlDB.Close()
}
