package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/EgorLis/micro-posts/internal/domain"
)

func (r *PGRepo) CreatePost(ctx context.Context, owner domain.UserID, text string) (domain.Post, error) {
	q := r.qb().Insert(fmt.Sprintf("%s.posts", r.schema)).
		Columns("user_id", "text").
		Values(owner, text).
		Suffix("RETURNING id, user_id, text, created_at")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreatePost", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var p domain.Post
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Text, &p.CreatedAt); err != nil {
		r.logger.Printf("CreatePost scan error after %s: %v", time.Since(start), err)
		return domain.Post{}, err
	}
	r.logger.Printf("CreatePost ok in %s id=%d user_id=%d", time.Since(start), p.ID, owner)
	return p, nil
}

// PostsByOwner: посты пользователя в порядке вставки (id ASC)
func (r *PGRepo) PostsByOwner(ctx context.Context, owner domain.UserID) ([]domain.Post, error) {
	q := r.qb().Select("id", "user_id", "text", "created_at").
		From(fmt.Sprintf("%s.posts", r.schema)).
		Where(sq.Eq{"user_id": owner}).
		OrderBy("id ASC")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("PostsByOwner", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("PostsByOwner query error after %s: %v", time.Since(start), err)
		return nil, err
	}
	defer rows.Close()

	var res []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Text, &p.CreatedAt); err != nil {
			r.logger.Printf("PostsByOwner scan error: %v", err)
			return nil, err
		}
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("PostsByOwner rows error: %v", err)
		return nil, err
	}
	r.logger.Printf("PostsByOwner ok in %s count=%d", time.Since(start), len(res))
	return res, nil
}

func (r *PGRepo) PostByID(ctx context.Context, id domain.PostID) (domain.Post, bool, error) {
	q := r.qb().Select("id", "user_id", "text", "created_at").
		From(fmt.Sprintf("%s.posts", r.schema)).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("PostByID", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var p domain.Post
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Text, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Post{}, false, nil
		}
		r.logger.Printf("PostByID scan error after %s: %v", time.Since(start), err)
		return domain.Post{}, false, err
	}
	r.logger.Printf("PostByID ok in %s id=%d", time.Since(start), p.ID)
	return p, true, nil
}

// DeletePost удаляет строку только при совпадении и id, и владельца —
// это и есть проверка прав на удаление. rows=0 — это (false, nil).
func (r *PGRepo) DeletePost(ctx context.Context, id domain.PostID, owner domain.UserID) (bool, error) {
	q := r.qb().Delete(fmt.Sprintf("%s.posts", r.schema)).
		Where(sq.And{sq.Eq{"id": id}, sq.Eq{"user_id": owner}})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("DeletePost", sqlStr, args)

	start := time.Now()
	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("DeletePost exec error after %s: %v", time.Since(start), err)
		return false, err
	}
	if tag.RowsAffected() == 0 {
		r.logger.Printf("DeletePost no rows affected in %s (post not found or not owner)", time.Since(start))
		return false, nil
	}
	r.logger.Printf("DeletePost ok in %s id=%d", time.Since(start), id)
	return true, nil
}
