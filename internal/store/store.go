package store

import (
	"context"
	"errors"

	"hope-backend/internal/models"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already exists")
)

type UserStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*models.User, error)
	UserByID(ctx context.Context, id int) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, id int, name, email *string) (*models.User, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	SetAvatar(ctx context.Context, id int, avatarURL *string) error
}

type BlogStore interface {
	CreateBlog(ctx context.Context, title, content string, imageURLs []string) (*models.Blog, error)
	Blogs(ctx context.Context) ([]models.Blog, error)
	UpdateBlog(ctx context.Context, id int, title, content *string) error
	DeleteBlog(ctx context.Context, id int) error
}

type StoryStore interface {
	CreateStory(ctx context.Context, title, pageURL, imageURL string) (*models.Story, error)
	Stories(ctx context.Context) ([]models.Story, error)
	DeleteStory(ctx context.Context, id int) error
}

type ContactStore interface {
	CreateContact(ctx context.Context, req models.CreateContactRequest) (*models.ContactForm, error)
	Contacts(ctx context.Context) ([]models.ContactForm, error)
	ContactByID(ctx context.Context, id int) (*models.ContactForm, error)
}

type VolunteerStore interface {
	CreateVolunteer(ctx context.Context, req models.CreateVolunteerRequest) (*models.VolunteerForm, error)
	Volunteers(ctx context.Context) ([]models.VolunteerForm, error)
	VolunteerByID(ctx context.Context, id int) (*models.VolunteerForm, error)
}

// Store is everything the handlers need from persistence.
type Store interface {
	UserStore
	BlogStore
	StoryStore
	ContactStore
	VolunteerStore
}
