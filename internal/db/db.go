package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jpillora/backoff"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

// Connect retries NewPostgresDB with exponential backoff until a connection
// is made or the delay would exceed maxWait.
func Connect(ctx context.Context, logs *zap.SugaredLogger, dsn string, maxWait time.Duration) (*PostgresDB, error) {
	b := &backoff.Backoff{
		Factor: 1.5,
		Min:    time.Second,
		Max:    maxWait,
	}

	for {
		db, err := NewPostgresDB(dsn)
		if err == nil {
			return db, nil
		}

		d := b.Duration()
		if d >= maxWait {
			return nil, fmt.Errorf("gave up after %d attempts: %w", int(b.Attempt()), err)
		}

		logs.Warnw("database not reachable, retrying",
			"error", err,
			"retry_in", d)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(d):
		}
	}
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) Exists(ctx context.Context, model any, column string, value any) (bool, error) {
	var count int64
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Model(model).Where(query, value).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("counting records by %q: %w", column, err)
	}

	return count > 0, nil
}

// SaveToTable inserts record together with its associations.
func (f *PostgresDB) SaveToTable(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("insert to table: %w", ErrDuplicate)
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Preload(clause.Associations).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAll(ctx context.Context, entity any) error {
	tx := f.DB.WithContext(ctx).Preload(clause.Associations).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records: %w", tx.Error)
	}
	return nil
}

// DeleteAll removes every row of model's table and reports how many went.
func (f *PostgresDB) DeleteAll(ctx context.Context, model any) (int64, error) {
	tx := f.DB.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting records: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

// Replace deletes the row matching column = value and inserts record in its
// place, in one transaction. Dependent rows go with the delete through the
// foreign key cascade.
func (f *PostgresDB) Replace(ctx context.Context, model any, column string, value any, record any) error {
	query := fmt.Sprintf("%s = ?", column)
	return f.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where(query, value).Delete(model)
		if res.Error != nil {
			return fmt.Errorf("deleting record by %q: %w", column, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("insert to table: %w", err)
		}
		return nil
	})
}

func (f *PostgresDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
