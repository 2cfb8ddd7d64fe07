package postgres

import (
	"context"
	"database/sql"

	"github.com/ekaspersen/isabellramsvik/internal/model"
)

func (s *Storage) CreateProjectWithImages(ctx context.Context, title, description string, images []model.Image) (
	*model.Project, error) {

	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var project model.Project
	err = tx.QueryRow(ctx,
		`INSERT INTO projects (title, description)
		 VALUES ($1, $2)
		 RETURNING id, title, description, created_at`,
		title, description,
	).Scan(&project.ID, &project.Title, &project.Description, &project.CreatedAt)
	if err != nil {
		return nil, err
	}

	for _, img := range images {
		var saved model.Image
		err = tx.QueryRow(ctx,
			`INSERT INTO images (url, object_key, title, description, project_id, display_in_gallery, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id, url, object_key, title, description, project_id, display_in_gallery, position, created_at`,
			img.URL, img.ObjectKey, img.Title, img.Description, project.ID, img.DisplayInGallery, img.Position,
		).Scan(&saved.ID, &saved.URL, &saved.ObjectKey, &saved.Title, &saved.Description,
			&saved.ProjectID, &saved.DisplayInGallery, &saved.Position, &saved.CreatedAt)
		if err != nil {
			return nil, err
		}
		project.Images = append(project.Images, saved)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *Storage) GetProject(ctx context.Context, id int64) (*model.Project, error) {
	var project model.Project
	err := s.DB.QueryRow(ctx,
		`SELECT id, title, description, created_at
		 FROM projects
		 WHERE id = $1`, id,
	).Scan(&project.ID, &project.Title, &project.Description, &project.CreatedAt)
	if err != nil {
		return nil, err
	}

	// Все изображения проекта по позиции; равные позиции упорядочиваем по id
	rows, err := s.DB.Query(ctx,
		`SELECT id, url, object_key, title, description, project_id, display_in_gallery, position, created_at
		 FROM images
		 WHERE project_id = $1
		 ORDER BY position ASC, id ASC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var img model.Image
		if err := rows.Scan(&img.ID, &img.URL, &img.ObjectKey, &img.Title, &img.Description,
			&img.ProjectID, &img.DisplayInGallery, &img.Position, &img.CreatedAt); err != nil {
			return nil, err
		}
		project.Images = append(project.Images, img)
	}
	return &project, rows.Err()
}

func (s *Storage) ListProjects(ctx context.Context, limit, offset int) ([]model.Project, int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, `SELECT COUNT(*) FROM projects`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.DB.Query(ctx,
		`SELECT id, title, description, created_at
		 FROM projects
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var projects []model.Project
	var ids []int64
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		projects = append(projects, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if len(ids) == 0 {
		return projects, total, nil
	}

	// Первое изображение каждого проекта — обложка для списка
	covers, err := s.DB.Query(ctx,
		`SELECT DISTINCT ON (project_id)
		        id, url, object_key, title, description, project_id, display_in_gallery, position, created_at
		 FROM images
		 WHERE project_id = ANY($1)
		 ORDER BY project_id, position ASC, id ASC`, ids)
	if err != nil {
		return nil, 0, err
	}
	defer covers.Close()

	firstImage := make(map[int64]model.Image, len(ids))
	for covers.Next() {
		var img model.Image
		if err := covers.Scan(&img.ID, &img.URL, &img.ObjectKey, &img.Title, &img.Description,
			&img.ProjectID, &img.DisplayInGallery, &img.Position, &img.CreatedAt); err != nil {
			return nil, 0, err
		}
		if img.ProjectID != nil {
			firstImage[*img.ProjectID] = img
		}
	}
	if err := covers.Err(); err != nil {
		return nil, 0, err
	}
	for i := range projects {
		if img, ok := firstImage[projects[i].ID]; ok {
			projects[i].Images = []model.Image{img}
		}
	}
	return projects, total, nil
}

func (s *Storage) UpdateProjectWithImages(ctx context.Context, id int64, title, description string,
	images []model.ProjectImageUpdate) error {

	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	res, err := tx.Exec(ctx,
		`UPDATE projects
		 SET title = $1, description = $2
		 WHERE id = $3`,
		title, description, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return sql.ErrNoRows
	}

	// Обновляем только существующие изображения проекта; новых записей здесь не создаём
	for _, img := range images {
		_, err = tx.Exec(ctx,
			`UPDATE images
			 SET title = $1, description = $2, position = $3, display_in_gallery = $4
			 WHERE id = $5 AND project_id = $6`,
			img.Title, img.Description, img.Position, img.DisplayInGallery, img.ID, id)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (s *Storage) DeleteProject(ctx context.Context, id int64) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM images WHERE project_id = $1`, id)
	if err != nil {
		return err
	}
	res, err := tx.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return sql.ErrNoRows
	}
	return tx.Commit(ctx)
}
