package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thomasdhughes/realworld/internal/model/article"
	"github.com/thomasdhughes/realworld/internal/model/user"
)

// CreateTestUser creates a test user with unique username/email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	uniqueID := uuid.New().String()

	testUser := &user.User{
		Username:     fmt.Sprintf("test_user_%s", uniqueID),
		Email:        fmt.Sprintf("test_%s@example.com", uniqueID),
		PasswordHash: "x",
		Image:        user.DefaultImage,
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

// WithUsername sets the username
func WithUsername(username string) UserOption {
	return func(u *user.User) {
		u.Username = username
	}
}

// WithEmail sets the email
func WithEmail(email string) UserOption {
	return func(u *user.User) {
		u.Email = email
	}
}

// WithPasswordHash sets the password digest
func WithPasswordHash(hash string) UserOption {
	return func(u *user.User) {
		u.PasswordHash = hash
	}
}

// WithBio sets the bio
func WithBio(bio string) UserOption {
	return func(u *user.User) {
		u.Bio = bio
	}
}

// CreateTestArticle creates a test article owned by authorID
func CreateTestArticle(db *gorm.DB, authorID uint, opts ...ArticleOption) *article.Article {
	uniqueID := uuid.New().String()

	testArticle := &article.Article{
		Slug:        fmt.Sprintf("test-article-%s-%d", uniqueID, authorID),
		Title:       fmt.Sprintf("Test Article %s", uniqueID),
		Description: "Test article description",
		Body:        "Test article body",
		AuthorID:    authorID,
	}

	for _, opt := range opts {
		opt(testArticle)
	}

	if err := db.Create(testArticle).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test article: %v", err))
	}

	return testArticle
}

// ArticleOption configures test article
type ArticleOption func(*article.Article)

// WithTitle sets the article title and derived slug
func WithTitle(title string, slug string) ArticleOption {
	return func(a *article.Article) {
		a.Title = title
		a.Slug = slug
	}
}

// WithBody sets the article body
func WithBody(body string) ArticleOption {
	return func(a *article.Article) {
		a.Body = body
	}
}

// WithCreatedAt pins the creation time (ordering-sensitive tests)
func WithCreatedAt(t time.Time) ArticleOption {
	return func(a *article.Article) {
		a.CreatedAt = t
		a.UpdatedAt = t
	}
}
