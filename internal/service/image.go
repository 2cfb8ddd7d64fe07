package service

import (
	"context"
	"log"
	"strconv"

	"github.com/ekaspersen/isabellramsvik/internal/cache"
	"github.com/ekaspersen/isabellramsvik/internal/model"
	"github.com/ekaspersen/isabellramsvik/internal/shared"
)

type ImagePage struct {
	Items []model.Image
	Total int
}

// ListImages: с projectID возвращает все изображения проекта независимо от
// флага видимости, без него — только видимые в галерее
func (s *CatalogService) ListImages(ctx context.Context, page, limit int, projectID *int64) (
	*ImagePage, shared.Pagination, error) {

	p := shared.NormalizePagination(page, limit)
	projectParam := ""
	if projectID != nil {
		projectParam = strconv.FormatInt(*projectID, 10)
	}
	key := cache.Key("images_list",
		"page", strconv.Itoa(p.Page),
		"limit", strconv.Itoa(p.Limit),
		"project_id", projectParam)
	if cached, ok := s.Cache.Get(key); ok {
		return cached.(*ImagePage), p, nil
	}

	items, total, err := s.Store.ListImages(ctx, p.Limit, p.Offset(), projectID)
	if err != nil {
		return nil, p, shared.DatabaseError(err)
	}
	result := &ImagePage{Items: items, Total: total}
	s.Cache.Set(key, result)
	return result, p, nil
}

func (s *CatalogService) GetImage(ctx context.Context, id int64) (*model.Image, error) {
	key := cache.Key("image", "id", strconv.FormatInt(id, 10))
	if cached, ok := s.Cache.Get(key); ok {
		return cached.(*model.Image), nil
	}

	img, err := s.Store.GetImage(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, shared.NotFoundError("image not found")
		}
		return nil, shared.DatabaseError(err)
	}
	s.Cache.Set(key, img)
	return img, nil
}

// CreateImage загружает отдельное изображение; без projectID оно живёт вне
// проектов и по умолчанию видно в галерее
func (s *CatalogService) CreateImage(ctx context.Context, up ImageUpload, projectID *int64) (*model.Image, error) {
	if err := validateUpload(up); err != nil {
		return nil, err
	}

	url, key, err := s.Objects.UploadImage(ctx, up.Data, up.Filename, up.ContentType)
	if err != nil {
		return nil, shared.UploadError("failed to upload image", err)
	}

	img, err := s.Store.CreateImage(ctx, model.Image{
		URL:              url,
		ObjectKey:        key,
		Title:            up.Title,
		Description:      up.Description,
		ProjectID:        projectID,
		DisplayInGallery: true,
	})
	if err != nil {
		s.rollbackUploads(ctx, []string{key})
		return nil, shared.DatabaseError(err)
	}
	s.Cache.InvalidateAll()
	return img, nil
}

// UpdateImage: project_id без значения снимает связь с проектом,
// display_in_gallery меняется только если флаг передан
func (s *CatalogService) UpdateImage(ctx context.Context, id int64, in model.UpdateImageRequest) (*model.Image, error) {
	img, err := s.Store.UpdateImage(ctx, id, in.Title, in.Description, in.ProjectID, in.DisplayInGallery)
	if err != nil {
		if isNoRows(err) {
			return nil, shared.NotFoundError("image not found")
		}
		return nil, shared.DatabaseError(err)
	}
	s.Cache.InvalidateAll()
	return img, nil
}

// DeleteImage удаляет объект из хранилища best-effort: неудача логируется,
// локальная запись удаляется в любом случае
func (s *CatalogService) DeleteImage(ctx context.Context, id int64) error {
	img, err := s.Store.GetImage(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return shared.NotFoundError("image not found")
		}
		return shared.DatabaseError(err)
	}

	if img.ObjectKey != "" {
		if err := s.Objects.DeleteObject(ctx, img.ObjectKey); err != nil {
			log.Printf("failed to delete object %s: %v", img.ObjectKey, err)
		}
	}

	if err := s.Store.DeleteImage(ctx, id); err != nil {
		if isNoRows(err) {
			return shared.NotFoundError("image not found")
		}
		return shared.DatabaseError(err)
	}
	s.Cache.InvalidateAll()
	return nil
}
