// Package sqlite implements store.Store on SQLite via the modernc driver.
// Lists are stored document-style: scalar columns plus members/items
// serialized as JSON, so a delete removes the whole aggregate in one row.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/shopapp/shopapp-backend/internal/model"
	"github.com/shopapp/shopapp-backend/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS shopping_lists (
    list_id       TEXT PRIMARY KEY,
    owner_id      TEXT NOT NULL,
    name          TEXT NOT NULL,
    description   TEXT,
    members       TEXT NOT NULL DEFAULT '[]',
    items         TEXT NOT NULL DEFAULT '[]',
    creation_time TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_shopping_lists_owner ON shopping_lists(owner_id);
`

// Open opens (or creates) the database file, enables WAL mode and applies
// the schema.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a SQLite-backed store from an existing connection.
func NewWithDB(db *sql.DB) store.Store { return &sqliteStore{db: db} }

// New opens path and returns a ready store.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db), nil
}

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Lists() store.Lists { return &lists{db: s.db} }

// HealthPing implements health.HealthPinger.
func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type lists struct{ db *sql.DB }

func (ls *lists) Create(ctx context.Context, l *model.ShoppingList) (*model.ShoppingList, error) {
	out := *l
	if out.ListID == "" {
		out.ListID = uuid.New().String()
	}
	if out.CreationTime.IsZero() {
		out.CreationTime = time.Now().UTC()
	}

	members, items, err := marshalSequences(&out)
	if err != nil {
		return nil, err
	}
	_, err = ls.db.ExecContext(ctx, `
        INSERT INTO shopping_lists (list_id, owner_id, name, description, members, items, creation_time)
        VALUES (?,?,?,?,?,?,?)
    `, out.ListID, out.OwnerID, out.Name, out.Description, members, items, out.CreationTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (ls *lists) FindByID(ctx context.Context, listID string) (*model.ShoppingList, error) {
	row := ls.db.QueryRowContext(ctx, `
        SELECT list_id, owner_id, name, description, members, items, creation_time
        FROM shopping_lists WHERE list_id=?
    `, listID)
	return scanList(row)
}

func (ls *lists) Find(ctx context.Context, q model.ListQuery) ([]*model.ShoppingList, error) {
	// Membership lives inside the JSON document, so filter owner matches in
	// SQL and member matches in Go. List cardinality per user is small.
	rows, err := ls.db.QueryContext(ctx, `
        SELECT list_id, owner_id, name, description, members, items, creation_time
        FROM shopping_lists ORDER BY creation_time DESC
    `)
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
		if l.OwnerID == q.UserID || (!q.OwnedOnly && l.HasMember(q.UserID)) {
			out = append(out, l)
		}
	}
	return out, rows.Err()
}

func (ls *lists) Save(ctx context.Context, l *model.ShoppingList) (*model.ShoppingList, error) {
	members, items, err := marshalSequences(l)
	if err != nil {
		return nil, err
	}
	res, err := ls.db.ExecContext(ctx, `
        UPDATE shopping_lists SET name=?, description=?, members=?, items=? WHERE list_id=?
    `, l.Name, l.Description, members, items, l.ListID)
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
	res, err := ls.db.ExecContext(ctx, `DELETE FROM shopping_lists WHERE list_id=?`, listID)
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
