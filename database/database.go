package database

import (
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"go-sniper/config"
	"go-sniper/models"
)

// DB defines the database instance containing the
// connection to the SQLite type database.
type DB struct {
	conn *gorm.DB
}

// New returns a new *DB instance.
func New(cfg config.Config) (*DB, error) {
	conn, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	db := &DB{conn: conn}

	if err = db.Migrate(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate migrates the current database structures.
func (db *DB) Migrate() error {
	return db.conn.AutoMigrate(&models.User{}, &models.ApiKey{}, &models.Scan{})
}

// Transaction runs fn against a transactional *DB; any error rolls the
// whole unit of work back.
func (db *DB) Transaction(fn func(tx *DB) error) error {
	return db.conn.Transaction(func(tx *gorm.DB) error {
		return fn(&DB{conn: tx})
	})
}

// translate maps gorm errors onto the shared sentinel set.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.ErrConflict
	default:
		return err
	}
}
