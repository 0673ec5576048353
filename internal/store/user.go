package store

import (
	"context"
	"errors"
	"fmt"

	"hope-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

func (p *Postgres) CreateUser(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	var user models.User
	query := `INSERT INTO users (name, email, password) VALUES ($1, $2, $3)
	          RETURNING id, name, email, avatar_url, created_at`
	err := p.pool.QueryRow(ctx, query, name, email, passwordHash).
		Scan(&user.ID, &user.Name, &user.Email, &user.AvatarURL, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

func (p *Postgres) UserByID(ctx context.Context, id int) (*models.User, error) {
	return p.userBy(ctx, "id = $1", id)
}

func (p *Postgres) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return p.userBy(ctx, "email = $1", email)
}

func (p *Postgres) userBy(ctx context.Context, cond string, arg any) (*models.User, error) {
	var user models.User
	query := `SELECT id, name, email, password, avatar_url, created_at FROM users WHERE ` + cond
	err := p.pool.QueryRow(ctx, query, arg).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.AvatarURL, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	return &user, nil
}

func (p *Postgres) UpdateUser(ctx context.Context, id int, name, email *string) (*models.User, error) {
	var user models.User
	query := `UPDATE users SET name = COALESCE($2, name), email = COALESCE($3, email)
	          WHERE id = $1
	          RETURNING id, name, email, avatar_url, created_at`
	err := p.pool.QueryRow(ctx, query, id, name, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.AvatarURL, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &user, nil
}

func (p *Postgres) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	tag, err := p.pool.Exec(ctx, `UPDATE users SET password = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) SetAvatar(ctx context.Context, id int, avatarURL *string) error {
	tag, err := p.pool.Exec(ctx, `UPDATE users SET avatar_url = $2 WHERE id = $1`, id, avatarURL)
	if err != nil {
		return fmt.Errorf("set avatar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
