package model

import "time"

type Image struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
	// Ключ объекта в S3; пустая строка — объект хранится вне нашего бакета
	ObjectKey        string    `json:"-"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ProjectID        *int64    `json:"project_id"`
	DisplayInGallery bool      `json:"display_in_gallery"`
	Position         int       `json:"position"`
	CreatedAt        time.Time `json:"created_at"`
}
