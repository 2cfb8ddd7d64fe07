package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/ekaspersen/isabellramsvik/internal/model"
	"github.com/ekaspersen/isabellramsvik/internal/service"

	"github.com/gin-gonic/gin"
)

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondValidation(c, "Invalid id")
		return 0, false
	}
	return id, true
}

func readUpload(fh *multipart.FileHeader, title, description string, display bool) (service.ImageUpload, error) {
	src, err := fh.Open()
	if err != nil {
		return service.ImageUpload{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return service.ImageUpload{}, err
	}
	return service.ImageUpload{
		Data:             data,
		Filename:         fh.Filename,
		ContentType:      fh.Header.Get("Content-Type"),
		Title:            title,
		Description:      description,
		DisplayInGallery: display,
	}, nil
}

// ListProjects возвращает страницу проектов с обложками
// @Summary Список проектов
// @Tags projects
// @Produce json
// @Param page query int false "Страница" default(1)
// @Param limit query int false "Размер страницы" default(10)
// @Success 200 {object} model.Response{data=[]model.Project,meta=model.Meta}
// @Router /projects [get]
func (h *Handler) ListProjects(c *gin.Context) {
	page, limit := parsePagination(c)
	result, p, err := h.Catalog.ListProjects(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, result.Items, p, result.Total)
}

// GetProject возвращает проект со всеми изображениями по позиции
// @Summary Проект по id
// @Tags projects
// @Produce json
// @Param id path int true "ID проекта"
// @Success 200 {object} model.Response{data=model.Project}
// @Failure 404 {object} model.Response
// @Router /projects/{id} [get]
func (h *Handler) GetProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	project, err := h.Catalog.GetProject(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, project)
}

// CreateProject создаёт проект с изображениями из multipart-формы:
// title, description, imagesCount и file_{i}, title_{i}, description_{i},
// displayInGallery_{i} для каждого индекса
// @Summary Создание проекта
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Заголовок"
// @Param description formData string false "Описание"
// @Param imagesCount formData int true "Число изображений"
// @Success 201 {object} model.Response{data=model.Project}
// @Failure 400 {object} model.Response
// @Router /projects [post]
func (h *Handler) CreateProject(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	imagesCount, _ := strconv.Atoi(c.PostForm("imagesCount"))

	var uploads []service.ImageUpload
	for i := 0; i < imagesCount; i++ {
		fh, err := c.FormFile(fmt.Sprintf("file_%d", i))
		if err != nil {
			continue
		}
		display := c.PostForm(fmt.Sprintf("displayInGallery_%d", i)) != "false"
		up, err := readUpload(fh,
			c.PostForm(fmt.Sprintf("title_%d", i)),
			c.PostForm(fmt.Sprintf("description_%d", i)),
			display)
		if err != nil {
			respondValidation(c, "Failed to read uploaded file")
			return
		}
		uploads = append(uploads, up)
	}

	project, err := h.Catalog.CreateProject(c.Request.Context(), title, description, uploads)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, project)
}

// UpdateProject сохраняет заголовок/описание и новый порядок изображений
// @Summary Обновление проекта
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Param input body model.UpdateProjectRequest true "Изменения"
// @Success 200 {object} model.Response{data=model.Project}
// @Failure 404 {object} model.Response
// @Router /projects/{id} [put]
func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input model.UpdateProjectRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, "Invalid input")
		return
	}
	project, err := h.Catalog.UpdateProject(c.Request.Context(), id, input.Title, input.Description, input.Images)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, project)
}

// DeleteProject каскадно удаляет проект, его изображения и их объекты
// @Summary Удаление проекта
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Success 200 {object} model.Response{data=model.DeleteProjectResponse}
// @Failure 404 {object} model.Response
// @Router /projects/{id} [delete]
func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	failed, err := h.Catalog.DeleteProject(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, model.DeleteProjectResponse{Deleted: true, FailedRemoteDeletes: failed})
}
