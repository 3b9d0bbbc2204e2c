// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/movie-catalog/internal/logger"
)

type txCtxKey struct{}

func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

func txFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx)
	return tx, ok && tx != nil
}

// transactor is the database/sql implementation of [Transactor].
type transactor struct {
	db *DB
}

// NewTransactor constructs a [Transactor] over db.
func NewTransactor(db *DB) Transactor {
	return &transactor{db: db}
}

// WithinTransaction implements [Transactor].
//
// The deferred rollback releases the transaction on every exit path,
// including a panic inside fn. After a successful commit it is a no-op.
func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	log := logger.FromContext(ctx)

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "transactor.WithinTransaction").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).
				Str("func", "transactor.WithinTransaction").
				Msg("failed to rollback transaction")
		}
	}()

	if err = fn(withTx(ctx, tx)); err != nil {
		log.Debug().
			Str("func", "transactor.WithinTransaction").
			AnErr("cause", err).
			Msg("rolling back transaction")
		return err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "transactor.WithinTransaction").
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}
