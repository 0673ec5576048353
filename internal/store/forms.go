package store

import (
	"context"
	"errors"
	"fmt"

	"hope-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

func (p *Postgres) CreateContact(ctx context.Context, req models.CreateContactRequest) (*models.ContactForm, error) {
	var form models.ContactForm
	query := `INSERT INTO contact_forms (name, email, subject, message) VALUES ($1, $2, $3, $4)
	          RETURNING id, name, email, subject, message, created_at`
	err := p.pool.QueryRow(ctx, query, req.Name, req.Email, req.Subject, req.Message).
		Scan(&form.ID, &form.Name, &form.Email, &form.Subject, &form.Message, &form.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create contact form: %w", err)
	}
	return &form, nil
}

func (p *Postgres) Contacts(ctx context.Context) ([]models.ContactForm, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, name, email, subject, message, created_at FROM contact_forms ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list contact forms: %w", err)
	}
	defer rows.Close()

	forms := []models.ContactForm{}
	for rows.Next() {
		var form models.ContactForm
		if err := rows.Scan(&form.ID, &form.Name, &form.Email, &form.Subject, &form.Message, &form.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact form: %w", err)
		}
		forms = append(forms, form)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contact forms: %w", err)
	}
	return forms, nil
}

func (p *Postgres) ContactByID(ctx context.Context, id int) (*models.ContactForm, error) {
	var form models.ContactForm
	query := `SELECT id, name, email, subject, message, created_at FROM contact_forms WHERE id = $1`
	err := p.pool.QueryRow(ctx, query, id).
		Scan(&form.ID, &form.Name, &form.Email, &form.Subject, &form.Message, &form.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load contact form: %w", err)
	}
	return &form, nil
}

func (p *Postgres) CreateVolunteer(ctx context.Context, req models.CreateVolunteerRequest) (*models.VolunteerForm, error) {
	var form models.VolunteerForm
	query := `INSERT INTO volunteer_forms (name, email, phone_number, address, state, country, zip_code, message)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id, name, email, phone_number, address, state, country, zip_code, message, created_at`
	err := p.pool.QueryRow(ctx, query,
		req.Name, req.Email, req.PhoneNumber, req.Address, req.State, req.Country, req.ZipCode, req.Message).
		Scan(&form.ID, &form.Name, &form.Email, &form.PhoneNumber, &form.Address,
			&form.State, &form.Country, &form.ZipCode, &form.Message, &form.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create volunteer form: %w", err)
	}
	return &form, nil
}

func (p *Postgres) Volunteers(ctx context.Context) ([]models.VolunteerForm, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, name, email, phone_number, address, state, country, zip_code, message, created_at
	                                FROM volunteer_forms ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list volunteer forms: %w", err)
	}
	defer rows.Close()

	forms := []models.VolunteerForm{}
	for rows.Next() {
		var form models.VolunteerForm
		if err := rows.Scan(&form.ID, &form.Name, &form.Email, &form.PhoneNumber, &form.Address,
			&form.State, &form.Country, &form.ZipCode, &form.Message, &form.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan volunteer form: %w", err)
		}
		forms = append(forms, form)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list volunteer forms: %w", err)
	}
	return forms, nil
}

func (p *Postgres) VolunteerByID(ctx context.Context, id int) (*models.VolunteerForm, error) {
	var form models.VolunteerForm
	query := `SELECT id, name, email, phone_number, address, state, country, zip_code, message, created_at
	          FROM volunteer_forms WHERE id = $1`
	err := p.pool.QueryRow(ctx, query, id).
		Scan(&form.ID, &form.Name, &form.Email, &form.PhoneNumber, &form.Address,
			&form.State, &form.Country, &form.ZipCode, &form.Message, &form.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load volunteer form: %w", err)
	}
	return &form, nil
}
