package snapshot

import (
	"context"
	"time"

	"ppoth/internal/domain/repository"
	"ppoth/internal/errors"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotModel mirrors the 'snapshots' table: one row per snapshot key,
// the serialized record as a JSON column and a version counter bumped on
// every replacement.
type SnapshotModel struct {
	Key       string         `gorm:"primaryKey;size:64"`
	Value     datatypes.JSON `gorm:"type:json;not null"`
	Version   uint64         `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SnapshotModel) TableName() string {
	return "snapshots"
}

// sqliteStore persists snapshots in an embedded SQLite database through
// GORM.
type sqliteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (or creates) the database file at path and migrates
// the snapshots table.
func NewSQLiteStore(path string, gormLogger gormLoggerOption) (repository.SnapshotStore, func() error, error) {
	if path == "" {
		return nil, nil, errors.New("sqlite store requires a database path")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		// Single-writer snapshot replacement; GORM's implicit per-statement
		// transaction adds nothing here.
		SkipDefaultTransaction: true,
		Logger:                 gormLogger.iface,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open sqlite database")
	}

	if err := db.AutoMigrate(&SnapshotModel{}); err != nil {
		return nil, nil, errors.Wrap(err, "failed to migrate snapshots table")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}

	return &sqliteStore{db: db}, sqlDB.Close, nil
}

func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var row SnapshotModel
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrapf(err, "failed to load snapshot %s", key)
	}

	return []byte(row.Value), nil
}

func (s *sqliteStore) Put(ctx context.Context, key string, data []byte) error {
	row := SnapshotModel{
		Key:     key,
		Value:   datatypes.JSON(data),
		Version: 1,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]any{
			"value":      datatypes.JSON(data),
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&row).Error
	if err != nil {
		return errors.Wrapf(err, "failed to store snapshot %s", key)
	}

	return nil
}
