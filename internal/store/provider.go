// Package store scopes database work to one pooled connection per request.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrUnavailable is returned when no connection could be acquired.
var ErrUnavailable = errors.New("database unavailable")

// Provider hands out dedicated connections from the gorm pool.
type Provider struct {
	db      *gorm.DB
	log     *logrus.Logger
	timeout time.Duration
}

// NewProvider wraps db. A positive timeout bounds each Acquire scope.
func NewProvider(db *gorm.DB, log *logrus.Logger, timeout time.Duration) *Provider {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Provider{db: db, log: log, timeout: timeout}
}

// Conn is a connection held for the duration of one Acquire call.
// tx is a NewDB session pinned to that connection: every query chained from it
// starts from a clean statement, so clauses and errors never carry over.
type Conn struct {
	tx *gorm.DB
}

// DB exposes the pinned session for queries not covered by Conn's methods.
func (c *Conn) DB() *gorm.DB { return c.tx }

// Acquire runs fn with a dedicated connection and releases it on every exit path.
// Failing to obtain the connection yields an error wrapping ErrUnavailable; errors
// returned by fn are passed through unchanged.
func (p *Provider) Acquire(ctx context.Context, fn func(*Conn) error) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	entered := false
	err := p.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		entered = true
		return fn(&Conn{tx: tx.Session(&gorm.Session{NewDB: true})})
	})
	if err != nil && !entered {
		p.log.WithError(err).Error("acquire database connection")
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}

// Ping checks the database answers a trivial query.
func (p *Provider) Ping(ctx context.Context) error {
	return p.Acquire(ctx, func(c *Conn) error {
		return c.tx.Exec("SELECT 1").Error
	})
}

// isDuplicate reports a unique-constraint violation. TranslateError covers the
// known drivers; the message check catches dialects without a translator.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
