package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"perawise/internal/models"
	"perawise/internal/pagination"
	"perawise/internal/services"
)

// --- mock content service ---

type mockContentService struct {
	listContentFn  func(page pagination.PageRequest, category string) (*pagination.PageResponse[models.ContentItem], error)
	ensureSeededFn func(items []models.ContentItem) error
}

func (m *mockContentService) ListContent(page pagination.PageRequest, category string) (*pagination.PageResponse[models.ContentItem], error) {
	if m.listContentFn != nil {
		return m.listContentFn(page, category)
	}
	resp := pagination.NewPageResponse([]models.ContentItem{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockContentService) EnsureSeeded(items []models.ContentItem) error {
	if m.ensureSeededFn != nil {
		return m.ensureSeededFn(items)
	}
	return nil
}

var _ services.ContentServicer = (*mockContentService)(nil)

func setupContentRouter(handler *ContentHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/content", handler.ListContent)
	return r
}

// --- tests ---

func TestContentHandler_ListContent(t *testing.T) {
	t.Run("returns 200 with articles", func(t *testing.T) {
		svc := &mockContentService{
			listContentFn: func(_ pagination.PageRequest, _ string) (*pagination.PageResponse[models.ContentItem], error) {
				resp := pagination.NewPageResponse([]models.ContentItem{
					{Title: "Budgeting 101", Category: "basics"},
					{Title: "Good Debt, Bad Debt", Category: "debt"},
				}, 1, 20, 2)
				return &resp, nil
			},
		}
		r := setupContentRouter(NewContentHandler(svc))

		rec := doRequest(r, "GET", "/content", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Errorf("expected 2 articles, got %d", len(data))
		}
	})

	t.Run("passes the category filter through", func(t *testing.T) {
		var capturedCategory string
		svc := &mockContentService{
			listContentFn: func(_ pagination.PageRequest, category string) (*pagination.PageResponse[models.ContentItem], error) {
				capturedCategory = category
				resp := pagination.NewPageResponse([]models.ContentItem{}, 1, 20, 0)
				return &resp, nil
			},
		}
		r := setupContentRouter(NewContentHandler(svc))

		doRequest(r, "GET", "/content?category=saving", "")

		if capturedCategory != "saving" {
			t.Errorf("expected saving, got %q", capturedCategory)
		}
	})

	t.Run("passes pagination parameters through", func(t *testing.T) {
		var capturedPage pagination.PageRequest
		svc := &mockContentService{
			listContentFn: func(page pagination.PageRequest, _ string) (*pagination.PageResponse[models.ContentItem], error) {
				capturedPage = page
				resp := pagination.NewPageResponse([]models.ContentItem{}, page.Page, page.PageSize, 0)
				return &resp, nil
			},
		}
		r := setupContentRouter(NewContentHandler(svc))

		doRequest(r, "GET", "/content?page=2&page_size=5", "")

		if capturedPage.Page != 2 || capturedPage.PageSize != 5 {
			t.Errorf("expected page=2 size=5, got %+v", capturedPage)
		}
	})

	t.Run("returns 400 on invalid category", func(t *testing.T) {
		r := setupContentRouter(NewContentHandler(&mockContentService{}))

		rec := doRequest(r, "GET", "/content?category=astrology", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on oversized page size", func(t *testing.T) {
		r := setupContentRouter(NewContentHandler(&mockContentService{}))

		rec := doRequest(r, "GET", "/content?page_size=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
