package handler

import (
	"net/http"

	"github.com/ekaspersen/isabellramsvik/internal/model"

	"github.com/gin-gonic/gin"
)

// ListMessages возвращает страницу сообщений, опционально по флагу read
// @Summary Список сообщений
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница" default(1)
// @Param limit query int false "Размер страницы" default(10)
// @Param read query bool false "Фильтр по прочитанности"
// @Success 200 {object} model.Response{data=[]model.Message,meta=model.Meta}
// @Router /messages [get]
func (h *Handler) ListMessages(c *gin.Context) {
	page, limit := parsePagination(c)

	var read *bool
	switch c.Query("read") {
	case "true":
		v := true
		read = &v
	case "false":
		v := false
		read = &v
	}

	result, p, err := h.Inbox.ListMessages(c.Request.Context(), page, limit, read)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, result.Items, p, result.Total)
}

// CreateMessage принимает пожелание с публичной формы
// @Summary Отправка сообщения
// @Tags messages
// @Accept json
// @Produce json
// @Param input body model.CreateMessageRequest true "Сообщение"
// @Success 201 {object} model.Response{data=model.Message}
// @Failure 400 {object} model.Response
// @Router /messages [post]
func (h *Handler) CreateMessage(c *gin.Context) {
	var input model.CreateMessageRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, "Invalid input")
		return
	}
	msg, err := h.Inbox.CreateMessage(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, msg)
}

// UpdateMessage переключает флаги read/favorite; id передаётся в теле
// @Summary Обновление флагов сообщения
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body model.UpdateMessageRequest true "Флаги"
// @Success 200 {object} model.Response{data=model.Message}
// @Failure 404 {object} model.Response
// @Router /messages [put]
func (h *Handler) UpdateMessage(c *gin.Context) {
	var input model.UpdateMessageRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, "Invalid input")
		return
	}
	msg, err := h.Inbox.UpdateMessage(c.Request.Context(), input.ID, input.Read, input.Favorite)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, msg)
}
