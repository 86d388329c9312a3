package services

import (
	"gorm.io/gorm"

	apperrors "perawise/internal/errors"
	"perawise/internal/models"
	"perawise/internal/pagination"
)

// contentService serves the curated educational content library.
type contentService struct {
	db *gorm.DB
}

// NewContentService creates a new ContentServicer.
func NewContentService(db *gorm.DB) ContentServicer {
	return &contentService{db: db}
}

// ListContent returns a page of articles, optionally filtered by category.
func (s *contentService) ListContent(page pagination.PageRequest, category string) (*pagination.PageResponse[models.ContentItem], error) {
	page.Defaults()

	base := s.db.Model(&models.ContentItem{})
	if category != "" {
		base = base.Where("category = ?", category)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var items []models.ContentItem
	err := base.Scopes(pagination.Paginate(page)).
		Order("title").
		Find(&items).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(items, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// EnsureSeeded inserts any missing catalog articles, keyed by title.
// Safe to call on every startup.
func (s *contentService) EnsureSeeded(items []models.ContentItem) error {
	for _, item := range items {
		item := item
		err := s.db.Where("title = ?", item.Title).FirstOrCreate(&item).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}
