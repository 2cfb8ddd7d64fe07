package handler

import (
	"net/http"
	"strconv"

	"github.com/ekaspersen/isabellramsvik/internal/model"

	"github.com/gin-gonic/gin"
)

// ListImages возвращает страницу изображений: с projectId — все изображения
// проекта, без него — публичную галерею
// @Summary Список изображений
// @Tags images
// @Produce json
// @Param page query int false "Страница" default(1)
// @Param limit query int false "Размер страницы" default(10)
// @Param projectId query int false "Фильтр по проекту"
// @Success 200 {object} model.Response{data=[]model.Image,meta=model.Meta}
// @Router /images [get]
func (h *Handler) ListImages(c *gin.Context) {
	page, limit := parsePagination(c)

	var projectID *int64
	if raw := c.Query("projectId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondValidation(c, "Invalid projectId")
			return
		}
		projectID = &id
	}

	result, p, err := h.Catalog.ListImages(c.Request.Context(), page, limit, projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, result.Items, p, result.Total)
}

// GetImage возвращает изображение по id
// @Summary Изображение по id
// @Tags images
// @Produce json
// @Param id path int true "ID изображения"
// @Success 200 {object} model.Response{data=model.Image}
// @Failure 404 {object} model.Response
// @Router /images/{id} [get]
func (h *Handler) GetImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	img, err := h.Catalog.GetImage(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, img)
}

// CreateImage загружает отдельное изображение из multipart-формы
// @Summary Загрузка изображения
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Файл изображения"
// @Param title formData string false "Заголовок"
// @Param description formData string false "Описание"
// @Param projectId formData int false "Проект"
// @Success 201 {object} model.Response{data=model.Image}
// @Failure 400 {object} model.Response
// @Router /images [post]
func (h *Handler) CreateImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		respondValidation(c, "Image file is required")
		return
	}

	var projectID *int64
	if raw := c.PostForm("projectId"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			projectID = &id
		}
	}

	up, err := readUpload(fh, c.PostForm("title"), c.PostForm("description"), true)
	if err != nil {
		respondValidation(c, "Failed to read uploaded file")
		return
	}

	img, err := h.Catalog.CreateImage(c.Request.Context(), up, projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, img)
}

// UpdateImage частично обновляет изображение: project_id без значения
// снимает связь с проектом
// @Summary Обновление изображения
// @Tags images
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID изображения"
// @Param input body model.UpdateImageRequest true "Изменения"
// @Success 200 {object} model.Response{data=model.Image}
// @Failure 404 {object} model.Response
// @Router /images/{id} [put]
func (h *Handler) UpdateImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input model.UpdateImageRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, "Invalid input")
		return
	}
	img, err := h.Catalog.UpdateImage(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, img)
}

// DeleteImage удаляет изображение и его объект в хранилище
// @Summary Удаление изображения
// @Tags images
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID изображения"
// @Success 200 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /images/{id} [delete]
func (h *Handler) DeleteImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Catalog.DeleteImage(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}
