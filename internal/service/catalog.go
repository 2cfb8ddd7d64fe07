package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/ekaspersen/isabellramsvik/internal/cache"
	"github.com/ekaspersen/isabellramsvik/internal/model"
	"github.com/ekaspersen/isabellramsvik/internal/shared"

	"github.com/jackc/pgx/v5"
)

// Допустимые типы и размер загружаемых файлов
const MaxUploadSize = 5 << 20 // 5 MB

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
}

// CatalogStore — операции каталога в персистентном хранилище
type CatalogStore interface {
	CreateProjectWithImages(ctx context.Context, title, description string, images []model.Image) (*model.Project, error)
	GetProject(ctx context.Context, id int64) (*model.Project, error)
	ListProjects(ctx context.Context, limit, offset int) ([]model.Project, int, error)
	UpdateProjectWithImages(ctx context.Context, id int64, title, description string, images []model.ProjectImageUpdate) error
	DeleteProject(ctx context.Context, id int64) error
	CreateImage(ctx context.Context, img model.Image) (*model.Image, error)
	GetImage(ctx context.Context, id int64) (*model.Image, error)
	ListImages(ctx context.Context, limit, offset int, projectID *int64) ([]model.Image, int, error)
	UpdateImage(ctx context.Context, id int64, title, description string, projectID *int64, displayInGallery *bool) (*model.Image, error)
	DeleteImage(ctx context.Context, id int64) error
}

// ObjectStorage — внешнее хранилище файлов изображений
type ObjectStorage interface {
	UploadImage(ctx context.Context, data []byte, filename, contentType string) (url, key string, err error)
	DeleteObject(ctx context.Context, key string) error
}

type CatalogService struct {
	Store   CatalogStore
	Objects ObjectStorage
	Cache   *cache.ResponseCache
}

func NewCatalogService(store CatalogStore, objects ObjectStorage, c *cache.ResponseCache) *CatalogService {
	return &CatalogService{Store: store, Objects: objects, Cache: c}
}

// ImageUpload — один загружаемый файл с подписями
type ImageUpload struct {
	Data             []byte
	Filename         string
	ContentType      string
	Title            string
	Description      string
	DisplayInGallery bool
}

type ProjectPage struct {
	Items []model.Project
	Total int
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

func validateUpload(up ImageUpload) error {
	if len(up.Data) == 0 {
		return shared.ValidationError("image file is required")
	}
	if _, ok := allowedImageTypes[up.ContentType]; !ok {
		return shared.ValidationError("unsupported image type: " + up.ContentType)
	}
	if len(up.Data) > MaxUploadSize {
		return shared.ValidationError("image exceeds maximum size of 5 MB")
	}
	return nil
}

// rollbackUploads удаляет уже загруженные объекты при неудачной операции
func (s *CatalogService) rollbackUploads(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.Objects.DeleteObject(ctx, key); err != nil {
			log.Printf("rollback: failed to delete object %s: %v", key, err)
		}
	}
}

func (s *CatalogService) ListProjects(ctx context.Context, page, limit int) (*ProjectPage, shared.Pagination, error) {
	p := shared.NormalizePagination(page, limit)
	key := cache.Key("projects_list",
		"page", strconv.Itoa(p.Page),
		"limit", strconv.Itoa(p.Limit))
	if cached, ok := s.Cache.Get(key); ok {
		return cached.(*ProjectPage), p, nil
	}

	items, total, err := s.Store.ListProjects(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, p, shared.DatabaseError(err)
	}
	result := &ProjectPage{Items: items, Total: total}
	s.Cache.Set(key, result)
	return result, p, nil
}

func (s *CatalogService) GetProject(ctx context.Context, id int64) (*model.Project, error) {
	key := cache.Key("project", "id", strconv.FormatInt(id, 10))
	if cached, ok := s.Cache.Get(key); ok {
		return cached.(*model.Project), nil
	}

	project, err := s.Store.GetProject(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, shared.NotFoundError("project not found")
		}
		return nil, shared.DatabaseError(err)
	}
	s.Cache.Set(key, project)
	return project, nil
}

// CreateProject загружает файлы в хранилище объектов и создаёт проект одной
// транзакцией; позиция изображения — его порядковый номер при отправке.
// Любая неудача откатывает уже загруженные объекты
func (s *CatalogService) CreateProject(ctx context.Context, title, description string, uploads []ImageUpload) (
	*model.Project, error) {

	if strings.TrimSpace(title) == "" {
		return nil, shared.ValidationError("title is required")
	}
	if len(uploads) == 0 {
		return nil, shared.ValidationError("at least one image is required")
	}
	for _, up := range uploads {
		if err := validateUpload(up); err != nil {
			return nil, err
		}
	}

	var (
		images   []model.Image
		uploaded []string
	)
	for i, up := range uploads {
		url, key, err := s.Objects.UploadImage(ctx, up.Data, up.Filename, up.ContentType)
		if err != nil {
			s.rollbackUploads(ctx, uploaded)
			return nil, shared.UploadError("failed to upload image", err)
		}
		uploaded = append(uploaded, key)
		images = append(images, model.Image{
			URL:              url,
			ObjectKey:        key,
			Title:            up.Title,
			Description:      up.Description,
			DisplayInGallery: up.DisplayInGallery,
			Position:         i + 1,
		})
	}

	project, err := s.Store.CreateProjectWithImages(ctx, title, description, images)
	if err != nil {
		s.rollbackUploads(ctx, uploaded)
		return nil, shared.DatabaseError(err)
	}
	s.Cache.InvalidateAll()
	return project, nil
}

// UpdateProject обновляет заголовок/описание и, если передан список,
// подписи и позиции существующих изображений проекта
func (s *CatalogService) UpdateProject(ctx context.Context, id int64, title, description string,
	images []model.ProjectImageUpdate) (*model.Project, error) {

	err := s.Store.UpdateProjectWithImages(ctx, id, title, description, images)
	if err != nil {
		if isNoRows(err) {
			return nil, shared.NotFoundError("project not found")
		}
		return nil, shared.DatabaseError(err)
	}
	s.Cache.InvalidateAll()

	project, err := s.Store.GetProject(ctx, id)
	if err != nil {
		return nil, shared.DatabaseError(err)
	}
	return project, nil
}

// DeleteProject удаляет объекты изображений из хранилища (best-effort),
// затем проект вместе с изображениями. Возвращает число неудалённых объектов
func (s *CatalogService) DeleteProject(ctx context.Context, id int64) (int, error) {
	project, err := s.Store.GetProject(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return 0, shared.NotFoundError("project not found")
		}
		return 0, shared.DatabaseError(err)
	}

	failed := 0
	for _, img := range project.Images {
		if img.ObjectKey == "" {
			continue
		}
		if err := s.Objects.DeleteObject(ctx, img.ObjectKey); err != nil {
			log.Printf("failed to delete object %s: %v", img.ObjectKey, err)
			failed++
		}
	}

	if err := s.Store.DeleteProject(ctx, id); err != nil {
		if isNoRows(err) {
			return failed, shared.NotFoundError("project not found")
		}
		return failed, shared.DatabaseError(err)
	}
	s.Cache.InvalidateAll()
	return failed, nil
}
