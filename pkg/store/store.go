package store

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/shuldan/ioc/pkg/contracts"
)

type storeConfig struct {
	maxOpenConns    int
	maxIdleConns    int
	connMaxLifetime time.Duration
	pingTimeout     time.Duration
	retryAttempts   int
	retryDelay      time.Duration
}

type Option func(*storeConfig)

func WithConnectionPool(maxOpen, maxIdle int, maxLifetime time.Duration) Option {
	return func(c *storeConfig) {
		c.maxOpenConns = maxOpen
		c.maxIdleConns = maxIdle
		c.connMaxLifetime = maxLifetime
	}
}

func WithPingTimeout(timeout time.Duration) Option {
	return func(c *storeConfig) {
		c.pingTimeout = timeout
	}
}

func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *storeConfig) {
		c.retryAttempts = attempts
		c.retryDelay = delay
	}
}

type sqlStore struct {
	mu     sync.Mutex
	db     *sql.DB
	driver string
	dsn    string
	config storeConfig
}

// New builds a store for the given driver and DSN. The driver must be
// registered with database/sql by the importer (mysql, postgres, sqlite3).
func New(driver, dsn string, options ...Option) contracts.Store {
	config := storeConfig{
		maxOpenConns:    25,
		maxIdleConns:    5,
		connMaxLifetime: time.Hour,
		pingTimeout:     5 * time.Second,
		retryAttempts:   3,
		retryDelay:      time.Second,
	}

	for _, option := range options {
		option(&config)
	}

	return &sqlStore{
		driver: driver,
		dsn:    dsn,
		config: config,
	}
}

// FromConfig reads the "database" section of an application config:
// driver, dsn and optional pool settings.
func FromConfig(cfg contracts.Config) contracts.Store {
	section, ok := cfg.GetSub("database")
	if !ok {
		return New("sqlite3", ":memory:")
	}

	var options []Option
	if section.Has("pool.max_open") {
		options = append(options, WithConnectionPool(
			section.GetInt("pool.max_open", 25),
			section.GetInt("pool.max_idle", 5),
			time.Duration(section.GetInt("pool.max_lifetime_seconds", 3600))*time.Second,
		))
	}

	return New(
		section.GetString("driver", "sqlite3"),
		section.GetString("dsn", ":memory:"),
		options...,
	)
}

func (s *sqlStore) Connect() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	var db *sql.DB
	var err error
	for attempt := 0; attempt <= s.config.retryAttempts; attempt++ {
		db, err = sql.Open(s.driver, s.dsn)
		if err == nil {
			break
		}
		time.Sleep(s.config.retryDelay)
	}
	if err != nil {
		return ErrConnectFailed.
			WithDetail("driver", s.driver).
			WithCause(err)
	}

	db.SetMaxOpenConns(s.config.maxOpenConns)
	db.SetMaxIdleConns(s.config.maxIdleConns)
	db.SetConnMaxLifetime(s.config.connMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), s.config.pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return ErrPingFailed.
			WithDetail("driver", s.driver).
			WithCause(err)
	}

	s.db = db
	return nil
}

func (s *sqlStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *sqlStore) Ping(ctx context.Context) error {
	db, err := s.DB()
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		return ErrPingFailed.
			WithDetail("driver", s.driver).
			WithCause(err)
	}
	return nil
}

func (s *sqlStore) DB() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, ErrNotConnected
	}
	return s.db, nil
}
