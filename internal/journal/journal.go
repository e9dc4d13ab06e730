// Package journal records window stack mutations to sqlite so a session's
// push/pop history can be inspected after the terminal is restored.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jask/winstack/core"
)

const (
	OpPush = "push"
	OpPop  = "pop"
)

// Entry is one recorded stack mutation. Depth is the stack size after it.
type Entry struct {
	SessionID string
	Seq       int64
	Op        string
	Window    string
	Depth     int
	At        time.Time
}

// Session summarises one coordinator run.
type Session struct {
	ID        string
	StartedAt time.Time
	Entries   int
}

// Journal is a core.StackObserver backed by sqlite. Each Open starts a new
// session.
type Journal struct {
	db      *sql.DB
	session string
	log     logrus.FieldLogger

	mu  sync.Mutex
	seq int64
	err error
}

// Open opens (creating if needed) the journal database at path, applies
// migrations and starts a session.
func Open(path string) (*Journal, error) {
	j, err := Inspect(path)
	if err != nil {
		return nil, err
	}
	session := uuid.NewString()
	if _, err := j.db.Exec(`INSERT INTO sessions(id, started_at) VALUES (?, ?)`, session, now()); err != nil {
		j.db.Close()
		return nil, fmt.Errorf("start journal session: %w", err)
	}
	j.session = session
	return j, nil
}

// Inspect opens the journal for reading without starting a session.
func Inspect(path string) (*Journal, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return &Journal{db: db, log: logrus.StandardLogger()}, nil
}

func (j *Journal) SetLogger(log logrus.FieldLogger) { j.log = log }

// SessionID identifies the session this journal writes to. It is empty for
// a journal opened with Inspect.
func (j *Journal) SessionID() string { return j.session }

func (j *Journal) WindowPushed(w core.Window, depth int) { j.record(OpPush, w, depth) }

func (j *Journal) WindowPopped(w core.Window, depth int) { j.record(OpPop, w, depth) }

// record never fails the caller; the first write error is kept for Err.
func (j *Journal) record(op string, w core.Window, depth int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.session == "" {
		return
	}
	j.seq++
	name := core.WindowName(w)
	_, err := j.db.Exec(`
	INSERT INTO entries(session_id, seq, op, window_name, depth, at)
	VALUES (?, ?, ?, ?, ?, ?)
	`, j.session, j.seq, op, name, depth, now())
	if err != nil {
		j.log.WithError(err).WithFields(logrus.Fields{"op": op, "window": name}).Warn("journal write failed")
		if j.err == nil {
			j.err = err
		}
	}
}

// Err reports the first failed write, if any.
func (j *Journal) Err() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.err
}

// Sessions lists every recorded session, oldest first.
func (j *Journal) Sessions(ctx context.Context) ([]Session, error) {
	rows, err := j.db.QueryContext(ctx, `
	SELECT s.id, s.started_at, COUNT(e.seq)
	FROM sessions s
	LEFT JOIN entries e ON e.session_id = s.id
	GROUP BY s.id
	ORDER BY s.rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.StartedAt, &s.Entries); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Entries returns the mutations of one session in order.
func (j *Journal) Entries(ctx context.Context, session string) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
	SELECT session_id, seq, op, window_name, depth, at
	FROM entries
	WHERE session_id = ?
	ORDER BY seq
	`, session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.SessionID, &e.Seq, &e.Op, &e.Window, &e.Depth, &e.At); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Prune deletes all but the newest keep sessions and their entries.
func (j *Journal) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	var deleted int64
	err := withTx(j.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
		DELETE FROM sessions
		WHERE id <> ? AND rowid NOT IN (SELECT rowid FROM sessions ORDER BY rowid DESC LIMIT ?)
		`, j.session, keep)
		if err != nil {
			return err
		}
		deleted, err = res.RowsAffected()
		return err
	})
	return deleted, err
}

func (j *Journal) Close() error {
	return j.db.Close()
}
