package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"daybook/internal/adapters/wire"
)

// snapshotTx groups the statements of one snapshot write
type snapshotTx struct {
	tx *sql.Tx
	sb squirrel.StatementBuilderType
}

// exists reports whether the user already has a row
func (t *snapshotTx) exists(ctx context.Context, userID string) (bool, error) {
	query, args, err := t.sb.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return false, err
	}

	var n int
	if err := t.tx.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to count rows: %w", err)
	}
	return n > 0, nil
}

// insert adds a new row
func (t *snapshotTx) insert(ctx context.Context, row wire.Row) error {
	columns := append([]string{"user_id"}, wire.Columns...)
	values := append([]any{row.UserID}, listValues(&row)...)
	columns = append(columns, "updated_at")
	values = append(values, updatedAt(&row))

	query, args, err := t.sb.Insert(table).Columns(columns...).Values(values...).ToSql()
	if err != nil {
		return err
	}
	if _, err := t.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

// update overwrites every list of an existing row and reports whether one matched
func (t *snapshotTx) update(ctx context.Context, row wire.Row) (bool, error) {
	update := t.sb.Update(table)
	for i, value := range listValues(&row) {
		update = update.Set(wire.Columns[i], value)
	}
	update = update.Set("updated_at", updatedAt(&row)).Where(squirrel.Eq{"user_id": row.UserID})

	query, args, err := update.ToSql()
	if err != nil {
		return false, err
	}
	res, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Commit commits the transaction
func (t *snapshotTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *snapshotTx) Rollback() error {
	return t.tx.Rollback()
}

func listValues(row *wire.Row) []any {
	fields := row.Fields()
	values := make([]any, len(fields))
	for i, f := range fields {
		values[i] = string(*f)
	}
	return values
}

func updatedAt(row *wire.Row) any {
	if row.UpdatedAt == nil {
		return nil
	}
	return row.UpdatedAt.Format("2006-01-02T15:04:05.000Z07:00")
}
