package store

import (
	"context"
	"fmt"

	"hope-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

func (p *Postgres) CreateBlog(ctx context.Context, title, content string, imageURLs []string) (*models.Blog, error) {
	var blog models.Blog
	err := p.inTx(ctx, func(tx pgx.Tx) error {
		query := `INSERT INTO blogs (title, content) VALUES ($1, $2)
		          RETURNING id, title, content, created_at`
		if err := tx.QueryRow(ctx, query, title, content).
			Scan(&blog.ID, &blog.Title, &blog.Content, &blog.CreatedAt); err != nil {
			return fmt.Errorf("insert blog: %w", err)
		}
		for _, url := range imageURLs {
			var img models.BlogImage
			imgQuery := `INSERT INTO blog_images (blog_id, image_url) VALUES ($1, $2)
			             RETURNING id, blog_id, image_url`
			if err := tx.QueryRow(ctx, imgQuery, blog.ID, url).
				Scan(&img.ID, &img.BlogID, &img.ImageURL); err != nil {
				return fmt.Errorf("insert blog image: %w", err)
			}
			blog.Images = append(blog.Images, img)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (p *Postgres) Blogs(ctx context.Context) ([]models.Blog, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, title, content, created_at FROM blogs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	blogs := []models.Blog{}
	index := map[int]int{}
	for rows.Next() {
		var blog models.Blog
		if err := rows.Scan(&blog.ID, &blog.Title, &blog.Content, &blog.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		blog.Images = []models.BlogImage{}
		index[blog.ID] = len(blogs)
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}

	imgRows, err := p.pool.Query(ctx, `SELECT id, blog_id, image_url FROM blog_images ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list blog images: %w", err)
	}
	defer imgRows.Close()

	for imgRows.Next() {
		var img models.BlogImage
		if err := imgRows.Scan(&img.ID, &img.BlogID, &img.ImageURL); err != nil {
			return nil, fmt.Errorf("scan blog image: %w", err)
		}
		if i, ok := index[img.BlogID]; ok {
			blogs[i].Images = append(blogs[i].Images, img)
		}
	}
	if err := imgRows.Err(); err != nil {
		return nil, fmt.Errorf("list blog images: %w", err)
	}
	return blogs, nil
}

func (p *Postgres) UpdateBlog(ctx context.Context, id int, title, content *string) error {
	query := `UPDATE blogs SET title = COALESCE($2, title), content = COALESCE($3, content) WHERE id = $1`
	tag, err := p.pool.Exec(ctx, query, id, title, content)
	if err != nil {
		return fmt.Errorf("update blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBlog removes the image rows and the parent post in one
// transaction; a failure leaves both in place.
func (p *Postgres) DeleteBlog(ctx context.Context, id int) error {
	return p.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM blog_images WHERE blog_id = $1`, id); err != nil {
			return fmt.Errorf("delete blog images: %w", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete blog: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}
