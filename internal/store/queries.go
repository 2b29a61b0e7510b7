package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var ErrQuery = errors.New("query error")

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Submission is a single contact form attempt as seen by this client.
type Submission struct {
	SubmissionID int64
	Name         string
	Email        string
	Message      string
	Status       string
	Error        string
	HTTPStatus   int
	CreatedOn    time.Time
}

const addSubmission = `
INSERT INTO submission (name, email, message, status, error, http_status, created_on)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING submission_id`

func (q *Queries) AddSubmission(ctx context.Context, sub Submission) (int64, error) {
	var submissionID int64
	row := q.db.QueryRowContext(ctx, addSubmission,
		sub.Name, sub.Email, sub.Message, sub.Status, sub.Error, sub.HTTPStatus, sub.CreatedOn.UnixMilli())
	if err := row.Scan(&submissionID); err != nil {
		return 0, errors.Join(err, ErrQuery)
	}

	return submissionID, nil
}

const recentSubmissions = `
SELECT submission_id, name, email, message, status, error, http_status, created_on
FROM submission
ORDER BY created_on DESC, submission_id DESC
LIMIT ?`

// Submissions returns up to limit of the newest submissions, newest first.
func (q *Queries) Submissions(ctx context.Context, limit int) ([]Submission, error) {
	rows, err := q.db.QueryContext(ctx, recentSubmissions, limit)
	if err != nil {
		return nil, errors.Join(err, ErrQuery)
	}
	defer rows.Close()

	var items []Submission
	for rows.Next() {
		var (
			sub       Submission
			createdOn int64
		)
		if errScan := rows.Scan(&sub.SubmissionID, &sub.Name, &sub.Email, &sub.Message, &sub.Status,
			&sub.Error, &sub.HTTPStatus, &createdOn); errScan != nil {
			return nil, errors.Join(errScan, ErrQuery)
		}
		sub.CreatedOn = time.UnixMilli(createdOn)
		items = append(items, sub)
	}

	if errRows := rows.Err(); errRows != nil {
		return nil, errors.Join(errRows, ErrQuery)
	}

	return items, nil
}

const lastSuccess = `
SELECT created_on FROM submission WHERE status = 'success' ORDER BY created_on DESC LIMIT 1`

// LastSuccess returns the time of the newest successful submission. The bool is false when
// nothing has been sent yet.
func (q *Queries) LastSuccess(ctx context.Context) (time.Time, bool, error) {
	var createdOn int64
	if err := q.db.QueryRowContext(ctx, lastSuccess).Scan(&createdOn); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, false, nil
		}

		return time.Time{}, false, errors.Join(err, ErrQuery)
	}

	return time.UnixMilli(createdOn), true, nil
}
