package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ekaspersen/isabellramsvik/internal/cache"
	"github.com/ekaspersen/isabellramsvik/internal/model"
	"github.com/ekaspersen/isabellramsvik/internal/service"

	"github.com/gin-gonic/gin"
)

type stubCatalogStore struct {
	projects []model.Project
}

func (s *stubCatalogStore) CreateProjectWithImages(ctx context.Context, title, description string, images []model.Image) (*model.Project, error) {
	return nil, sql.ErrNoRows
}

func (s *stubCatalogStore) GetProject(ctx context.Context, id int64) (*model.Project, error) {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return &s.projects[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *stubCatalogStore) ListProjects(ctx context.Context, limit, offset int) ([]model.Project, int, error) {
	return s.projects, len(s.projects), nil
}

func (s *stubCatalogStore) UpdateProjectWithImages(ctx context.Context, id int64, title, description string, images []model.ProjectImageUpdate) error {
	return sql.ErrNoRows
}

func (s *stubCatalogStore) DeleteProject(ctx context.Context, id int64) error { return sql.ErrNoRows }

func (s *stubCatalogStore) CreateImage(ctx context.Context, img model.Image) (*model.Image, error) {
	return &img, nil
}

func (s *stubCatalogStore) GetImage(ctx context.Context, id int64) (*model.Image, error) {
	return nil, sql.ErrNoRows
}

func (s *stubCatalogStore) ListImages(ctx context.Context, limit, offset int, projectID *int64) ([]model.Image, int, error) {
	return nil, 0, nil
}

func (s *stubCatalogStore) UpdateImage(ctx context.Context, id int64, title, description string, projectID *int64, displayInGallery *bool) (*model.Image, error) {
	return nil, sql.ErrNoRows
}

func (s *stubCatalogStore) DeleteImage(ctx context.Context, id int64) error { return sql.ErrNoRows }

type stubObjectStorage struct{}

func (s *stubObjectStorage) UploadImage(ctx context.Context, data []byte, filename, contentType string) (string, string, error) {
	return "https://cdn.example.com/uploads/x.jpg", "uploads/x.jpg", nil
}

func (s *stubObjectStorage) DeleteObject(ctx context.Context, key string) error { return nil }

type stubInboxStore struct {
	created []model.Message
}

func (s *stubInboxStore) CreateMessage(ctx context.Context, msg model.Message) (*model.Message, error) {
	msg.ID = int64(len(s.created) + 1)
	s.created = append(s.created, msg)
	return &msg, nil
}

func (s *stubInboxStore) ListMessages(ctx context.Context, limit, offset int, read *bool) ([]model.Message, int, error) {
	return s.created, len(s.created), nil
}

func (s *stubInboxStore) UpdateMessage(ctx context.Context, id int64, read, favorite *bool) (*model.Message, error) {
	return nil, sql.ErrNoRows
}

func newTestRouter(catalogStore service.CatalogStore, inboxStore service.InboxStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	c := cache.New()
	h := NewHandler(nil,
		service.NewCatalogService(catalogStore, &stubObjectStorage{}, c),
		service.NewInboxService(inboxStore, c))

	r := gin.New()
	r.GET("/projects", h.ListProjects)
	r.GET("/projects/:id", h.GetProject)
	r.POST("/messages", h.CreateMessage)
	return r
}

func TestListProjectsEnvelope(t *testing.T) {
	store := &stubCatalogStore{projects: []model.Project{
		{ID: 1, Title: "Spring Series", CreatedAt: time.Now()},
	}}
	r := newTestRouter(store, &stubInboxStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects?page=1&limit=10", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Success bool            `json:"success"`
		Data    []model.Project `json:"data"`
		Meta    *model.Meta     `json:"meta"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Errorf("expected success envelope")
	}
	if len(resp.Data) != 1 || resp.Data[0].Title != "Spring Series" {
		t.Errorf("unexpected data: %+v", resp.Data)
	}
	if resp.Meta == nil || resp.Meta.Page != 1 || resp.Meta.Limit != 10 || resp.Meta.Total != 1 || resp.Meta.Pages != 1 {
		t.Errorf("unexpected meta: %+v", resp.Meta)
	}
}

func TestListProjectsEmptyPageRendersArray(t *testing.T) {
	r := newTestRouter(&stubCatalogStore{}, &stubInboxStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"data":[]`) {
		t.Errorf("expected empty array in data, got %s", w.Body.String())
	}
}

func TestGetProjectNotFoundEnvelope(t *testing.T) {
	r := newTestRouter(&stubCatalogStore{}, &stubInboxStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects/99", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var resp model.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Errorf("expected failure envelope")
	}
	if resp.Error == nil || resp.Error.Code != "NOT_FOUND" {
		t.Errorf("unexpected error: %+v", resp.Error)
	}
}

func TestGetProjectInvalidID(t *testing.T) {
	r := newTestRouter(&stubCatalogStore{}, &stubInboxStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects/abc", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateMessageValidationEnvelope(t *testing.T) {
	r := newTestRouter(&stubCatalogStore{}, &stubInboxStore{})

	body := `{"fullname":"Kari","email":"kari@example.com"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp model.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("unexpected error: %+v", resp.Error)
	}
}

func TestCreateMessageCreated(t *testing.T) {
	inbox := &stubInboxStore{}
	r := newTestRouter(&stubCatalogStore{}, inbox)

	body := `{"fullname":"Kari","email":"kari@example.com","wish":"a commissioned piece"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(inbox.created) != 1 {
		t.Fatalf("expected message persisted")
	}
}
