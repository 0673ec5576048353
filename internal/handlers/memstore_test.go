package handlers_test

import (
	"context"
	"sync"
	"time"

	"hope-backend/internal/models"
	"hope-backend/internal/store"
)

// memStore is an in-memory store.Store used to drive the handlers
// without a database. Setting fail makes every operation error, which
// is how the generic 500 paths get exercised.
type memStore struct {
	mu   sync.Mutex
	fail error

	nextID     int
	users      map[int]*models.User
	blogs      map[int]*models.Blog
	stories    map[int]*models.Story
	contacts   map[int]*models.ContactForm
	volunteers map[int]*models.VolunteerForm
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[int]*models.User{},
		blogs:      map[int]*models.Blog{},
		stories:    map[int]*models.Story{},
		contacts:   map[int]*models.ContactForm{},
		volunteers: map[int]*models.VolunteerForm{},
	}
}

func (m *memStore) id() int {
	m.nextID++
	return m.nextID
}

func (m *memStore) CreateUser(_ context.Context, name, email, passwordHash string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	for _, u := range m.users {
		if u.Email == email {
			return nil, store.ErrEmailTaken
		}
	}
	user := &models.User{
		ID:        m.id(),
		Name:      name,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: time.Now(),
	}
	m.users[user.ID] = user
	return user, nil
}

func (m *memStore) UserByID(_ context.Context, id int) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return user, nil
}

func (m *memStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) UpdateUser(_ context.Context, id int, name, email *string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if email != nil {
		for _, u := range m.users {
			if u.ID != id && u.Email == *email {
				return nil, store.ErrEmailTaken
			}
		}
		user.Email = *email
	}
	if name != nil {
		user.Name = *name
	}
	return user, nil
}

func (m *memStore) UpdatePassword(_ context.Context, id int, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	user, ok := m.users[id]
	if !ok {
		return store.ErrNotFound
	}
	user.Password = passwordHash
	return nil
}

func (m *memStore) SetAvatar(_ context.Context, id int, avatarURL *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	user, ok := m.users[id]
	if !ok {
		return store.ErrNotFound
	}
	user.AvatarURL = avatarURL
	return nil
}

func (m *memStore) CreateBlog(_ context.Context, title, content string, imageURLs []string) (*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	blog := &models.Blog{
		ID:        m.id(),
		Title:     title,
		Content:   content,
		CreatedAt: time.Now(),
		Images:    []models.BlogImage{},
	}
	for _, url := range imageURLs {
		blog.Images = append(blog.Images, models.BlogImage{ID: m.id(), BlogID: blog.ID, ImageURL: url})
	}
	m.blogs[blog.ID] = blog
	return blog, nil
}

func (m *memStore) Blogs(_ context.Context) ([]models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	blogs := []models.Blog{}
	for _, b := range m.blogs {
		blogs = append(blogs, *b)
	}
	return blogs, nil
}

func (m *memStore) UpdateBlog(_ context.Context, id int, title, content *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	blog, ok := m.blogs[id]
	if !ok {
		return store.ErrNotFound
	}
	if title != nil {
		blog.Title = *title
	}
	if content != nil {
		blog.Content = *content
	}
	return nil
}

func (m *memStore) DeleteBlog(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.blogs[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.blogs, id)
	return nil
}

func (m *memStore) CreateStory(_ context.Context, title, pageURL, imageURL string) (*models.Story, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	story := &models.Story{
		ID:        m.id(),
		Title:     title,
		PageURL:   pageURL,
		CreatedAt: time.Now(),
	}
	story.Images = []models.StoryImage{{ID: m.id(), StoryID: story.ID, ImageURL: imageURL}}
	m.stories[story.ID] = story
	return story, nil
}

func (m *memStore) Stories(_ context.Context) ([]models.Story, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	stories := []models.Story{}
	for _, s := range m.stories {
		stories = append(stories, *s)
	}
	return stories, nil
}

func (m *memStore) DeleteStory(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.stories[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.stories, id)
	return nil
}

func (m *memStore) CreateContact(_ context.Context, req models.CreateContactRequest) (*models.ContactForm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	form := &models.ContactForm{
		ID:        m.id(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	m.contacts[form.ID] = form
	return form, nil
}

func (m *memStore) Contacts(_ context.Context) ([]models.ContactForm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	forms := []models.ContactForm{}
	for _, f := range m.contacts {
		forms = append(forms, *f)
	}
	return forms, nil
}

func (m *memStore) ContactByID(_ context.Context, id int) (*models.ContactForm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	form, ok := m.contacts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return form, nil
}

func (m *memStore) CreateVolunteer(_ context.Context, req models.CreateVolunteerRequest) (*models.VolunteerForm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	form := &models.VolunteerForm{
		ID:          m.id(),
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		State:       req.State,
		Country:     req.Country,
		ZipCode:     req.ZipCode,
		Message:     req.Message,
		CreatedAt:   time.Now(),
	}
	m.volunteers[form.ID] = form
	return form, nil
}

func (m *memStore) Volunteers(_ context.Context) ([]models.VolunteerForm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	forms := []models.VolunteerForm{}
	for _, f := range m.volunteers {
		forms = append(forms, *f)
	}
	return forms, nil
}

func (m *memStore) VolunteerByID(_ context.Context, id int) (*models.VolunteerForm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	form, ok := m.volunteers[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return form, nil
}

var _ store.Store = (*memStore)(nil)
