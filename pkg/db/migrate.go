package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	// TargetSchemaVersion is the highest journaldb schema version this build supports.
	TargetSchemaVersion int64 = 1
	// JournalDBComponent names the journal database in mindlog_versions.
	JournalDBComponent = "journaldb"
)

// GetComponentSchemaVersion retrieves the schema version for a given component.
// Returns 0 if the component is not found or the versions table doesn't exist yet.
func GetComponentSchemaVersion(db *sql.DB, componentName string) (int64, error) {
	query := `SELECT version FROM mindlog_versions WHERE component = ?;`

	var version int64
	err := db.QueryRow(query, componentName).Scan(&version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		if strings.Contains(err.Error(), "no such table") && strings.Contains(err.Error(), "mindlog_versions") {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to scan version for component '%s': %w", componentName, err)
	}
	return version, nil
}

// InitializeSchema creates all journaldb tables and records schemaVersionToSet
// for the component.
func InitializeSchema(db *sql.DB, schemaVersionToSet int64) error {
	if _, err := db.Exec(SchemaV1); err != nil {
		return fmt.Errorf("failed to execute schema v1 SQL: %w", err)
	}

	insertVersionSQL := `
INSERT INTO mindlog_versions (component, version) VALUES (?, ?)
ON CONFLICT(component) DO UPDATE SET version = excluded.version, created_at = unixepoch();`

	if _, err := db.Exec(insertVersionSQL, JournalDBComponent, schemaVersionToSet); err != nil {
		return fmt.Errorf("failed to insert/update version for component %s to %d: %w", JournalDBComponent, schemaVersionToSet, err)
	}
	return nil
}

// UpgradeDB brings the journaldb component of db to appTargetSchemaVersion.
// New databases are initialised; older and newer versions are refused.
// dbIdentifierForLog is only used in messages. A nil logger discards output.
func UpgradeDB(db *sql.DB, dbIdentifierForLog string, appTargetSchemaVersion int64, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.With(
		zap.String("component", JournalDBComponent),
		zap.String("database", dbIdentifierForLog),
	)

	currentDBVersion, err := GetComponentSchemaVersion(db, JournalDBComponent)
	if err != nil {
		return err
	}

	switch {
	case currentDBVersion == 0:
		log.Info("initializing schema", zap.Int64("version", appTargetSchemaVersion))
		if err := InitializeSchema(db, appTargetSchemaVersion); err != nil {
			return fmt.Errorf("failed to initialize component %s in database '%s': %w", JournalDBComponent, dbIdentifierForLog, err)
		}
		return nil
	case currentDBVersion == appTargetSchemaVersion:
		log.Debug("schema up to date", zap.Int64("version", currentDBVersion))
		return nil
	case currentDBVersion < appTargetSchemaVersion:
		return fmt.Errorf("component %s in database '%s' has schema version %d, which is older than application's target schema version %d. Automatic migration from this older version is not yet supported", JournalDBComponent, dbIdentifierForLog, currentDBVersion, appTargetSchemaVersion)
	default:
		return fmt.Errorf("component %s in database '%s' has schema version %d, which is newer than application's target schema version %d. Please upgrade mindlog", JournalDBComponent, dbIdentifierForLog, currentDBVersion, appTargetSchemaVersion)
	}
}
