package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/WaffleCollege/yukki143/internal/models"
)

// CreateBlog inserts a new blog and returns its row ID. When CreatedAt is
// zero it is set to the current time before inserting, and the field is
// updated on the passed-in blog either way.
func (s *Store) CreateBlog(ctx context.Context, blog *models.Blog) (int64, error) {
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO blogs (title, body, user_name, created_at)
		 VALUES (?, ?, ?, ?)`,
		blog.Title, blog.Body, blog.UserName, blog.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting blog: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted blog id: %w", err)
	}
	blog.ID = id
	return id, nil
}

// GetBlog returns the blog with the given ID, without its comments.
// Returns nil, ErrNotFound if no matching row exists.
func (s *Store) GetBlog(ctx context.Context, id int64) (*models.Blog, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, body, user_name, created_at
		 FROM blogs
		 WHERE id = ?`, id)

	blog, err := scanBlog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting blog by id: %w", err)
	}
	return blog, nil
}

// ListBlogs returns all blogs ordered by creation time, newest first.
func (s *Store) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, body, user_name, created_at
		 FROM blogs
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing blogs: %w", err)
	}
	defer rows.Close()

	var blogs []models.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning blog row: %w", err)
		}
		blogs = append(blogs, *blog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blog rows: %w", err)
	}

	return blogs, nil
}

// UpdateBlog overwrites the title, body, and user_name of the blog with the
// given ID. Returns ErrNotFound when no such row exists.
func (s *Store) UpdateBlog(ctx context.Context, blog *models.Blog) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE blogs SET title = ?, body = ?, user_name = ? WHERE id = ?`,
		blog.Title, blog.Body, blog.UserName, blog.ID,
	)
	if err != nil {
		return fmt.Errorf("updating blog: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBlog removes the blog with the given ID together with all of its
// comments, inside a single transaction so no orphan comments can persist.
// Returns ErrNotFound when no such blog exists.
func (s *Store) DeleteBlog(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE blog_id = ?`, id); err != nil {
		return fmt.Errorf("deleting comments: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM blogs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting blog: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}
	return nil
}

// scanner is a minimal interface satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanBlog scans a single blog row into a models.Blog.
func scanBlog(row scanner) (*models.Blog, error) {
	var (
		blog      models.Blog
		createdAt string
	)

	if err := row.Scan(
		&blog.ID, &blog.Title, &blog.Body, &blog.UserName, &createdAt,
	); err != nil {
		return nil, err
	}

	blog.CreatedAt = parseTime(createdAt)
	return &blog, nil
}
