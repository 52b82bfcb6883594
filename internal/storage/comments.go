package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/WaffleCollege/yukki143/internal/models"
)

// CreateComment inserts a new comment and returns its row ID. When CreatedAt
// is zero it is set to the current time before inserting. A blog_id that
// references no existing blog fails the foreign key constraint.
func (s *Store) CreateComment(ctx context.Context, comment *models.Comment) (int64, error) {
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO comments (body, user_name, blog_id, created_at)
		 VALUES (?, ?, ?, ?)`,
		comment.Body, comment.UserName, comment.BlogID, comment.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting comment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted comment id: %w", err)
	}
	comment.ID = id
	return id, nil
}

// GetComment returns the comment with the given ID.
// Returns nil, ErrNotFound if no matching row exists.
func (s *Store) GetComment(ctx context.Context, id int64) (*models.Comment, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, body, user_name, blog_id, created_at
		 FROM comments
		 WHERE id = ?`, id)

	comment, err := scanComment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting comment by id: %w", err)
	}
	return comment, nil
}

// ListComments returns all comments for the given blog in insertion order.
func (s *Store) ListComments(ctx context.Context, blogID int64) ([]models.Comment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, body, user_name, blog_id, created_at
		 FROM comments
		 WHERE blog_id = ?
		 ORDER BY id`, blogID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning comment row: %w", err)
		}
		comments = append(comments, *comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating comment rows: %w", err)
	}

	return comments, nil
}

// CountComments returns the number of comments attached to the given blog.
func (s *Store) CountComments(ctx context.Context, blogID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE blog_id = ?`, blogID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting comments: %w", err)
	}
	return n, nil
}

// scanComment scans a single comment row into a models.Comment.
func scanComment(row scanner) (*models.Comment, error) {
	var (
		comment   models.Comment
		createdAt sql.NullString
	)

	if err := row.Scan(
		&comment.ID, &comment.Body, &comment.UserName, &comment.BlogID, &createdAt,
	); err != nil {
		return nil, err
	}

	if createdAt.Valid {
		comment.CreatedAt = parseTime(createdAt.String)
	}
	return &comment, nil
}
