package model

// ErrorInfo представляет тело ошибки в конверте ответа
// @Description Структура ошибки с сообщением и стабильным кодом
type ErrorInfo struct {
	Message string `json:"message" example:"project not found"`
	Code    string `json:"code" example:"NOT_FOUND"`
}

// Meta представляет метаданные пагинации
// @Description Структура метаданных для списочных ответов
type Meta struct {
	Page  int `json:"page" example:"1"`
	Limit int `json:"limit" example:"10"`
	Total int `json:"total" example:"42"`
	Pages int `json:"pages" example:"5"`
}

// Response представляет единый конверт ответа API
// @Description Единая структура ответа: success, data, error, meta
type Response struct {
	Success bool       `json:"success" example:"true"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *Meta      `json:"meta,omitempty"`
}

// LoginRequest содержит данные для входа администратора
// @Description Структура запроса для входа в админку
type LoginRequest struct {
	Email    string `json:"email" example:"admin@example.com"`
	Password string `json:"password" example:"password123"`
}

// TokenResponse представляет ответ с токенами аутентификации
// @Description Структура ответа с access и refresh токенами
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshRequest содержит refresh токен для обновления access токена
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type ProfileResponse struct {
	ID    int64  `json:"id" example:"1"`
	Email string `json:"email" example:"admin@example.com"`
	Name  string `json:"name" example:"Admin"`
}

// ProjectImageUpdate описывает изменение одного изображения внутри проекта
// @Description Позиция и подписи существующего изображения при сохранении проекта
type ProjectImageUpdate struct {
	ID               int64  `json:"id" example:"3"`
	Title            string `json:"title" example:"Untitled I"`
	Description      string `json:"description"`
	Position         int    `json:"position" example:"1"`
	DisplayInGallery bool   `json:"display_in_gallery" example:"true"`
}

// UpdateProjectRequest содержит данные для обновления проекта
// @Description Заголовок, описание и новый порядок изображений проекта
type UpdateProjectRequest struct {
	Title       string               `json:"title" example:"Spring Series"`
	Description string               `json:"description"`
	Images      []ProjectImageUpdate `json:"images"`
}

// UpdateImageRequest содержит данные для частичного обновления изображения
// @Description project_id отсутствует в запросе — связь с проектом снимается;
// @Description display_in_gallery меняется только если поле передано
type UpdateImageRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	ProjectID        *int64 `json:"project_id"`
	DisplayInGallery *bool  `json:"display_in_gallery"`
}

// CreateMessageRequest содержит данные формы обратной связи
// @Description Публичная форма пожеланий: имя, email и текст обязательны
type CreateMessageRequest struct {
	Fullname string `json:"fullname" example:"Kari Nordmann"`
	Email    string `json:"email" example:"kari@example.com"`
	Phone    string `json:"phone" example:"+47 900 00 000"`
	Wish     string `json:"wish" example:"I would love a commissioned piece"`
}

// UpdateMessageRequest переключает флаги сообщения
// @Description nil-поле оставляет флаг без изменений
type UpdateMessageRequest struct {
	ID       int64 `json:"id" binding:"required" example:"7"`
	Read     *bool `json:"read"`
	Favorite *bool `json:"favorite"`
}

// DeleteProjectResponse представляет итог каскадного удаления
// @Description failed_remote_deletes — число объектов, не удалённых из хранилища
type DeleteProjectResponse struct {
	Deleted             bool `json:"deleted" example:"true"`
	FailedRemoteDeletes int  `json:"failed_remote_deletes" example:"0"`
}
