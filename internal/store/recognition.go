package store

import (
	"database/sql"
	"time"
)

// Recognition is one confirmed sign in a session's transcript.
type Recognition struct {
	ID          int64
	SessionID   string
	Label       string
	ConfirmedAt time.Time
}

// RecognitionRepository provides access to the confirmed-sign transcript.
type RecognitionRepository struct {
	db *sql.DB
}

// Recognitions returns the recognition repository for this store.
func (s *Store) Recognitions() *RecognitionRepository {
	return &RecognitionRepository{db: s.db}
}

// Add appends a confirmed sign to the transcript. A zero ConfirmedAt is
// set to the current time.
func (r *RecognitionRepository) Add(rec *Recognition) error {
	if rec.ConfirmedAt.IsZero() {
		rec.ConfirmedAt = time.Now()
	}

	res, err := r.db.Exec(
		`INSERT INTO recognitions (session_id, label, confirmed_at) VALUES (?, ?, ?)`,
		rec.SessionID, rec.Label, rec.ConfirmedAt,
	)
	if err != nil {
		return err
	}

	rec.ID, err = res.LastInsertId()
	return err
}

// ListBySession retrieves a session's transcript in confirmation order.
func (r *RecognitionRepository) ListBySession(sessionID string) ([]*Recognition, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, label, confirmed_at FROM recognitions
		 WHERE session_id = ? ORDER BY confirmed_at, id`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecognitions(rows)
}

// Recent retrieves the latest confirmed signs across all sessions, newest
// first, up to limit entries.
func (r *RecognitionRepository) Recent(limit int) ([]*Recognition, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, label, confirmed_at FROM recognitions
		 ORDER BY confirmed_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecognitions(rows)
}

// DeleteBySession clears a session's transcript.
func (r *RecognitionRepository) DeleteBySession(sessionID string) error {
	_, err := r.db.Exec(`DELETE FROM recognitions WHERE session_id = ?`, sessionID)
	return err
}

func scanRecognitions(rows *sql.Rows) ([]*Recognition, error) {
	var recs []*Recognition
	for rows.Next() {
		rec := &Recognition{}
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Label, &rec.ConfirmedAt); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
