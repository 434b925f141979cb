package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skill-exchange/internal/database"
	"skill-exchange/internal/domain/audit"
	"skill-exchange/internal/domain/post"

	"github.com/jackc/pgx/v5"
)

type CreatePostParams struct {
	AccountID         int64
	SkillID           int64
	PostType          post.Type
	Title             string
	Details           string
	ContactPreference *string
	ExpiresAt         *time.Time
}

// PostFilter predicates left nil are omitted from the query.
type PostFilter struct {
	SkillID  *int64
	PostType *post.Type
	Status   *post.Status
}

type PostRepository interface {
	Create(ctx context.Context, p CreatePostParams) (int64, error)
	List(ctx context.Context, f PostFilter) ([]post.Post, error)
	FindByID(ctx context.Context, postID int64) (post.Post, error)
	IncrementViews(ctx context.Context, postID int64) error
	UpdateStatus(ctx context.Context, postID int64, status post.Status) error
}

type PostgresPostRepository struct {
	db database.DB
}

func NewPostgresPostRepository(db database.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

func (r *PostgresPostRepository) Create(ctx context.Context, p CreatePostParams) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO skill_posts (account_id, skill_id, post_type, title, details, status, contact_preference, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, 'Active', $6, $7, now())
		 RETURNING post_id`,
		p.AccountID, p.SkillID, string(p.PostType), p.Title, p.Details, p.ContactPreference, p.ExpiresAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

const postSelect = `SELECT sp.post_id, sp.account_id, COALESCE(up.full_name, 'Unknown'),
       sp.skill_id, sc.skill_name, sp.post_type, sp.title, sp.details, sp.status,
       sp.contact_preference, sp.expires_at, sp.views_count, sp.created_at
 FROM skill_posts sp
 JOIN accounts a ON sp.account_id = a.account_id
 JOIN user_profiles up ON a.account_id = up.account_id
 JOIN skills_catalog sc ON sp.skill_id = sc.skill_id
 WHERE sp.deleted_at IS NULL`

func (r *PostgresPostRepository) List(ctx context.Context, f PostFilter) ([]post.Post, error) {
	query := postSelect
	args := []any{}
	if f.SkillID != nil {
		args = append(args, *f.SkillID)
		query += fmt.Sprintf(" AND sp.skill_id = $%d", len(args))
	}
	if f.PostType != nil {
		args = append(args, string(*f.PostType))
		query += fmt.Sprintf(" AND sp.post_type = $%d", len(args))
	}
	if f.Status != nil {
		args = append(args, string(*f.Status))
		query += fmt.Sprintf(" AND sp.status = $%d", len(args))
	}
	query += " ORDER BY sp.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]post.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPostRepository) FindByID(ctx context.Context, postID int64) (post.Post, error) {
	row := r.db.QueryRow(ctx, postSelect+" AND sp.post_id = $1", postID)
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return post.Post{}, post.ErrNotFound
		}
		return post.Post{}, err
	}
	return p, nil
}

// IncrementViews bumps the counter and records the anonymous view in the
// same transaction so the audit trail matches the count exactly.
func (r *PostgresPostRepository) IncrementViews(ctx context.Context, postID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	affected, err := tx.Exec(ctx,
		`UPDATE skill_posts
		 SET views_count = views_count + 1, updated_at = now()
		 WHERE post_id = $1 AND deleted_at IS NULL`,
		postID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return post.ErrNotFound
	}

	err = insertAuditEntry(ctx, tx, audit.Entry{
		Action:     audit.ActionPostViewed,
		EntityType: "SkillPost",
		EntityID:   postID,
		Result:     audit.ResultSuccess,
	})
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresPostRepository) UpdateStatus(ctx context.Context, postID int64, status post.Status) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE skill_posts SET status = $2, updated_at = now()
		 WHERE post_id = $1 AND deleted_at IS NULL`,
		postID, string(status),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return post.ErrNotFound
	}
	return nil
}

func scanPost(row database.Row) (post.Post, error) {
	var p post.Post
	var postType, status string
	err := row.Scan(&p.ID, &p.AccountID, &p.AuthorName, &p.SkillID, &p.SkillName,
		&postType, &p.Title, &p.Details, &status, &p.ContactPreference,
		&p.ExpiresAt, &p.ViewsCount, &p.CreatedAt)
	if err != nil {
		return post.Post{}, err
	}
	p.PostType = post.Type(postType)
	p.Status = post.Status(status)
	return p, nil
}
