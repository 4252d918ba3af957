// Package postgres implements store.Store on PostgreSQL via the pgx stdlib
// driver. Member and item sequences are stored as JSONB alongside the
// scalar columns.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/shopapp/shopapp-backend/internal/model"
	"github.com/shopapp/shopapp-backend/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS shopping_lists (
    list_id       TEXT PRIMARY KEY,
    owner_id      TEXT NOT NULL,
    name          TEXT NOT NULL,
    description   TEXT,
    members       JSONB NOT NULL DEFAULT '[]',
    items         JSONB NOT NULL DEFAULT '[]',
    creation_time TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_shopping_lists_owner ON shopping_lists(owner_id);
CREATE INDEX IF NOT EXISTS idx_shopping_lists_members ON shopping_lists USING GIN (members);
`

// Open opens a PostgreSQL connection and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Bootstrap applies the schema. Deployments that manage migrations
// externally can skip it.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

// NewWithDB constructs a Postgres-backed store from an existing connection.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Lists() store.Lists { return &lists{db: s.db} }

// HealthPing implements health.HealthPinger.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type lists struct{ db *sql.DB }

func (ls *lists) Create(ctx context.Context, l *model.ShoppingList) (*model.ShoppingList, error) {
	out := *l
	if out.ListID == "" {
		out.ListID = uuid.New().String()
	}

	members, items, err := marshalSequences(&out)
	if err != nil {
		return nil, err
	}
	var created time.Time
	row := ls.db.QueryRowContext(ctx, `
        INSERT INTO shopping_lists (list_id, owner_id, name, description, members, items)
        VALUES ($1,$2,$3,$4,$5::jsonb,$6::jsonb)
        RETURNING creation_time
    `, out.ListID, out.OwnerID, out.Name, out.Description, string(members), string(items))
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	out.CreationTime = created
	return &out, nil
}

func (ls *lists) FindByID(ctx context.Context, listID string) (*model.ShoppingList, error) {
	row := ls.db.QueryRowContext(ctx, `
        SELECT list_id, owner_id, name, description, members, items, creation_time
        FROM shopping_lists WHERE list_id=$1
    `, listID)
	return scanList(row)
}

func (ls *lists) Find(ctx context.Context, q model.ListQuery) ([]*model.ShoppingList, error) {
	query := `
        SELECT list_id, owner_id, name, description, members, items, creation_time
        FROM shopping_lists
        WHERE owner_id = $1`
	if !q.OwnedOnly {
		// JSONB containment matches any member entry with this userId.
		query += ` OR members @> $2::jsonb`
	}
	query += ` ORDER BY creation_time DESC`

	args := []interface{}{q.UserID}
	if !q.OwnedOnly {
		memberMatch, err := json.Marshal([]map[string]string{{"userId": q.UserID}})
		if err != nil {
			return nil, err
		}
		args = append(args, string(memberMatch))
	}

	rows, err := ls.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.ShoppingList
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (ls *lists) Save(ctx context.Context, l *model.ShoppingList) (*model.ShoppingList, error) {
	members, items, err := marshalSequences(l)
	if err != nil {
		return nil, err
	}
	res, err := ls.db.ExecContext(ctx, `
        UPDATE shopping_lists SET name=$1, description=$2, members=$3::jsonb, items=$4::jsonb WHERE list_id=$5
    `, l.Name, l.Description, string(members), string(items), l.ListID)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, model.ErrNotFound
	}
	out := *l
	return &out, nil
}

func (ls *lists) DeleteByID(ctx context.Context, listID string) error {
	res, err := ls.db.ExecContext(ctx, `DELETE FROM shopping_lists WHERE list_id=$1`, listID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func marshalSequences(l *model.ShoppingList) (members, items []byte, err error) {
	if members, err = json.Marshal(l.Members); err != nil {
		return nil, nil, err
	}
	if items, err = json.Marshal(l.Items); err != nil {
		return nil, nil, err
	}
	return members, items, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanList(row rowScanner) (*model.ShoppingList, error) {
	var (
		out            model.ShoppingList
		members, items []byte
	)
	err := row.Scan(&out.ListID, &out.OwnerID, &out.Name, &out.Description, &members, &items, &out.CreationTime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(members, &out.Members); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &out.Items); err != nil {
		return nil, err
	}
	if out.Members == nil {
		out.Members = []model.Member{}
	}
	if out.Items == nil {
		out.Items = []model.Item{}
	}
	return &out, nil
}
