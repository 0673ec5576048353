package store

import (
	"context"
	"fmt"

	"hope-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

func (p *Postgres) CreateStory(ctx context.Context, title, pageURL, imageURL string) (*models.Story, error) {
	var story models.Story
	err := p.inTx(ctx, func(tx pgx.Tx) error {
		query := `INSERT INTO stories (title, page_url) VALUES ($1, $2)
		          RETURNING id, title, page_url, created_at`
		if err := tx.QueryRow(ctx, query, title, pageURL).
			Scan(&story.ID, &story.Title, &story.PageURL, &story.CreatedAt); err != nil {
			return fmt.Errorf("insert story: %w", err)
		}
		var img models.StoryImage
		imgQuery := `INSERT INTO story_images (story_id, image_url) VALUES ($1, $2)
		             RETURNING id, story_id, image_url`
		if err := tx.QueryRow(ctx, imgQuery, story.ID, imageURL).
			Scan(&img.ID, &img.StoryID, &img.ImageURL); err != nil {
			return fmt.Errorf("insert story image: %w", err)
		}
		story.Images = append(story.Images, img)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &story, nil
}

func (p *Postgres) Stories(ctx context.Context) ([]models.Story, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, title, page_url, created_at FROM stories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	defer rows.Close()

	stories := []models.Story{}
	index := map[int]int{}
	for rows.Next() {
		var story models.Story
		if err := rows.Scan(&story.ID, &story.Title, &story.PageURL, &story.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan story: %w", err)
		}
		story.Images = []models.StoryImage{}
		index[story.ID] = len(stories)
		stories = append(stories, story)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	imgRows, err := p.pool.Query(ctx, `SELECT id, story_id, image_url FROM story_images ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list story images: %w", err)
	}
	defer imgRows.Close()

	for imgRows.Next() {
		var img models.StoryImage
		if err := imgRows.Scan(&img.ID, &img.StoryID, &img.ImageURL); err != nil {
			return nil, fmt.Errorf("scan story image: %w", err)
		}
		if i, ok := index[img.StoryID]; ok {
			stories[i].Images = append(stories[i].Images, img)
		}
	}
	if err := imgRows.Err(); err != nil {
		return nil, fmt.Errorf("list story images: %w", err)
	}
	return stories, nil
}

// DeleteStory removes the image rows and the parent story atomically.
func (p *Postgres) DeleteStory(ctx context.Context, id int) error {
	return p.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM story_images WHERE story_id = $1`, id); err != nil {
			return fmt.Errorf("delete story images: %w", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM stories WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete story: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}
