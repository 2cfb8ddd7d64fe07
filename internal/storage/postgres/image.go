package postgres

import (
	"context"
	"database/sql"

	"github.com/ekaspersen/isabellramsvik/internal/model"
)

func (s *Storage) CreateImage(ctx context.Context, img model.Image) (*model.Image, error) {
	var saved model.Image
	err := s.DB.QueryRow(ctx,
		`INSERT INTO images (url, object_key, title, description, project_id, display_in_gallery, position)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, url, object_key, title, description, project_id, display_in_gallery, position, created_at`,
		img.URL, img.ObjectKey, img.Title, img.Description, img.ProjectID, img.DisplayInGallery, img.Position,
	).Scan(&saved.ID, &saved.URL, &saved.ObjectKey, &saved.Title, &saved.Description,
		&saved.ProjectID, &saved.DisplayInGallery, &saved.Position, &saved.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *Storage) GetImage(ctx context.Context, id int64) (*model.Image, error) {
	var img model.Image
	err := s.DB.QueryRow(ctx,
		`SELECT id, url, object_key, title, description, project_id, display_in_gallery, position, created_at
		 FROM images
		 WHERE id = $1`, id,
	).Scan(&img.ID, &img.URL, &img.ObjectKey, &img.Title, &img.Description,
		&img.ProjectID, &img.DisplayInGallery, &img.Position, &img.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// ListImages: с projectID — все изображения проекта, без него — только видимые в галерее
func (s *Storage) ListImages(ctx context.Context, limit, offset int, projectID *int64) ([]model.Image, int, error) {
	var (
		total int
		err   error
	)
	if projectID != nil {
		err = s.DB.QueryRow(ctx,
			`SELECT COUNT(*) FROM images WHERE project_id = $1`, *projectID).Scan(&total)
	} else {
		err = s.DB.QueryRow(ctx,
			`SELECT COUNT(*) FROM images WHERE display_in_gallery = true`).Scan(&total)
	}
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT id, url, object_key, title, description, project_id, display_in_gallery, position, created_at
		 FROM images
		 WHERE ($1::bigint IS NULL AND display_in_gallery = true) OR project_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`
	rows, err := s.DB.Query(ctx, query, projectID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var images []model.Image
	for rows.Next() {
		var img model.Image
		if err := rows.Scan(&img.ID, &img.URL, &img.ObjectKey, &img.Title, &img.Description,
			&img.ProjectID, &img.DisplayInGallery, &img.Position, &img.CreatedAt); err != nil {
			return nil, 0, err
		}
		images = append(images, img)
	}
	return images, total, rows.Err()
}

func (s *Storage) UpdateImage(ctx context.Context, id int64, title, description string,
	projectID *int64, displayInGallery *bool) (*model.Image, error) {

	var img model.Image
	err := s.DB.QueryRow(ctx,
		`UPDATE images
		 SET title = $1,
		     description = $2,
		     project_id = $3,
		     display_in_gallery = COALESCE($4, display_in_gallery)
		 WHERE id = $5
		 RETURNING id, url, object_key, title, description, project_id, display_in_gallery, position, created_at`,
		title, description, projectID, displayInGallery, id,
	).Scan(&img.ID, &img.URL, &img.ObjectKey, &img.Title, &img.Description,
		&img.ProjectID, &img.DisplayInGallery, &img.Position, &img.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (s *Storage) DeleteImage(ctx context.Context, id int64) error {
	res, err := s.DB.Exec(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return sql.ErrNoRows
	}
	return nil
}
