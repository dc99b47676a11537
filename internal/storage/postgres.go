package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const (
	databaseExists = `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`
	createDatabase = `CREATE DATABASE %s`
	migrationsDir  = "migrations"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Database - пул соединений с PostgreSQL для хранения сессий
type Database struct {
	Pool *pgxpool.Pool
	cfg  *pgxpool.Config
	dsn  string
}

func NewDatabase(ctx context.Context, dsn string) (*Database, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	return &Database{Pool: pool, cfg: cfg, dsn: dsn}, nil
}

// Initialize создаёт БД сессий, если её нет, и применяет миграции
func (d *Database) Initialize(ctx context.Context) error {
	if err := d.ensureDatabase(ctx); err != nil {
		return fmt.Errorf("error create database: %w", err)
	}
	if err := migrate(ctx, d.dsn); err != nil {
		return fmt.Errorf("error migrate database: %w", err)
	}
	return nil
}

func (d *Database) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

func (d *Database) Close() error {
	d.Pool.Close()
	return nil
}

// ensureDatabase - goose не создаёт БД, поэтому проверяем её через служебную базу postgres
func (d *Database) ensureDatabase(ctx context.Context) error {
	conn, err := pgx.ConnectConfig(ctx, d.cfg.ConnConfig)
	if err == nil {
		return conn.Close(ctx)
	}

	admin := d.cfg.ConnConfig.Copy()
	admin.Database = "postgres"
	conn, err = pgx.ConnectConfig(ctx, admin)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	defer conn.Close(ctx)

	name := d.cfg.ConnConfig.Database
	var exists bool
	if err := conn.QueryRow(ctx, databaseExists, name).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check database exists: %w", err)
	}
	if exists {
		return nil
	}
	if _, err := conn.Exec(ctx, fmt.Sprintf(createDatabase, pgx.Identifier{name}.Sanitize())); err != nil {
		return fmt.Errorf("failed to create database %s: %w", name, err)
	}
	return nil
}

func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db error: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect error: %w", err)
	}
	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("goose run migrations error: %w", err)
	}
	return nil
}
