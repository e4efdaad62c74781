package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the database used by the resource controllers.
var DB *gorm.DB

func config() *gorm.Config {
	return &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: newQueryLogger(log.Logger),
	}
}

// Connect opens the SQLite database at dsn, migrates it and configures
// the connection pool.
func Connect(dsn string) error {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return setup(db)
}

// ConnectPostgres opens a PostgreSQL database with the given DSN.
func ConnectPostgres(dsn string) error {
	db, err := gorm.Open(postgres.Open(dsn), config())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return setup(db)
}

// setup migrates the schema, registers the error callbacks and sets DB.
func setup(db *gorm.DB) error {
	err := db.AutoMigrate(User{}, Category{}, Transaction{}, Budget{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "fintrack:after_query", queryCallback},
		{db.Callback().Query().After("fintrack:after_query"), "fintrack:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "fintrack:after_create", createUpdateCallback},
		{db.Callback().Create().After("fintrack:after_create"), "fintrack:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "fintrack:after_update", createUpdateCallback},
		{db.Callback().Update().After("fintrack:after_update"), "fintrack:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "fintrack:after_delete_general", generalCallback},
	}

	for _, cb := range callbacks {
		if err := cb.processor.Register(cb.name, cb.fn); err != nil {
			return err
		}
	}

	DB = db
	return nil
}

var plural = regexp.MustCompile("ies$")

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = plural.ReplaceAllString(name, "y")
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed: categories.user_id, categories.name"),
		strings.Contains(msg, "idx_category_user_name"):
		db.Error = ErrCategoryNameNotUnique
	case strings.Contains(msg, "UNIQUE constraint failed: users.auth_provider, users.auth_id"),
		strings.Contains(msg, "idx_user_provider"):
		db.Error = ErrUserNotUnique
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}
