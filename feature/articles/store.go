package articles

import (
	"context"
	"errors"
	"fmt"

	"focode-importer/feature/articles/models"

	"gorm.io/gorm"
)

// Store persists articles and users. It is an explicitly constructed
// dependency around an injected gorm handle; the caller owns the handle's
// lifecycle.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over an open database connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates or updates the article and user tables. The slug
// uniqueness constraint installed here is what makes re-imports idempotent.
func (s *Store) AutoMigrate() error {
	if err := s.db.AutoMigrate(&models.Article{}, &models.User{}); err != nil {
		return fmt.Errorf("failed to migrate article schema: %w", err)
	}
	return nil
}

// FindBySlug returns the article stored under slug, or nil when absent.
func (s *Store) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find article %q: %w", slug, err)
	}
	return &article, nil
}

// Create inserts a new article. A slug collision surfaces as an error from
// the unique index.
func (s *Store) Create(ctx context.Context, article *models.Article) error {
	if err := s.db.WithContext(ctx).Create(article).Error; err != nil {
		return fmt.Errorf("failed to create article %q: %w", article.Slug, err)
	}
	return nil
}

// Update saves all fields of an existing article.
func (s *Store) Update(ctx context.Context, article *models.Article) error {
	if err := s.db.WithContext(ctx).Save(article).Error; err != nil {
		return fmt.Errorf("failed to update article %q: %w", article.Slug, err)
	}
	return nil
}

// EnsureSystemUser returns the system principal, creating it if absent.
// Safe to call on every run.
func (s *Store) EnsureSystemUser(ctx context.Context) (*models.User, error) {
	user := models.User{
		Username:    models.SystemUsername,
		DisplayName: models.SystemDisplayName,
	}
	err := s.db.WithContext(ctx).
		Where(models.User{Username: models.SystemUsername}).
		FirstOrCreate(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to ensure system user: %w", err)
	}
	return &user, nil
}
