package store

import (
	"database/sql"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
	"github.com/Masterminds/squirrel"
)

// database/sql driver names.
const (
	driverPgx     = "pgx"
	driverSQLite3 = "sqlite3"
)

// DB bundles a connection pool with everything that differs between SQL
// dialects: the driver name, the placeholder format and the error classifier.
type DB struct {
	*sql.DB
	driverName      string
	builder         squirrel.StatementBuilderType
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

func newDB(conn *sql.DB, driverName string, classifier ErrorClassifier, log *logger.Logger) *DB {
	return &DB{
		DB:              conn,
		driverName:      driverName,
		builder:         newStatementBuilder(driverName),
		errorClassifier: classifier,
		logger:          log,
	}
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driverName)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassifier == nil {
		return Unclassified
	}
	return db.errorClassifier.Classify(err)
}
