// Package history keeps a Postgres record of tokenized expressions.
package history

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/graeme-hill/complexcalc-go/lib"
)

type Entry struct {
	ID     int64
	Expr   string
	Tokens []lib.Token
	Error  string
	At     time.Time
}

type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open connects with a lib/pq connection string such as
// "user=postgres password=password dbname=complexcalc sslmode=disable".
func Open(ctx context.Context, connectionString string, log *zap.Logger) (*Store, error) {
	if connectionString == "" {
		return nil, errors.New("history: empty connection string")
	}

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return NewStore(db, log), nil
}

func NewStore(db *sql.DB, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{db: db, log: log.Named("history")}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores one tokenize run. tokens is nil when scanErr is set.
func (s *Store) Record(ctx context.Context, expr string, tokens []lib.Token, scanErr error) (int64, error) {
	encoded, err := EncodeTokens(tokens)
	if err != nil {
		return 0, err
	}
	errText := ""
	if scanErr != nil {
		errText = scanErr.Error()
	}

	var id int64
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO expressions (expr, tokens, error) VALUES ($1, $2, $3) RETURNING id`,
		expr, encoded, errText,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	s.log.Debug("recorded expression", zap.Int64("id", id), zap.String("expr", expr))
	return id, nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, expr, tokens, error, at FROM expressions ORDER BY at DESC, id DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var encoded string
		if err := rows.Scan(&e.ID, &e.Expr, &encoded, &e.Error, &e.At); err != nil {
			return nil, err
		}
		e.Tokens, err = DecodeTokens(encoded)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func EncodeTokens(tokens []lib.Token) (string, error) {
	if tokens == nil {
		tokens = []lib.Token{}
	}
	return sonic.MarshalString(tokens)
}

func DecodeTokens(encoded string) ([]lib.Token, error) {
	tokens := []lib.Token{}
	if err := sonic.UnmarshalString(encoded, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}
