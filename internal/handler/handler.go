package handler

import (
	"net/http"
	"strings"

	"github.com/ekaspersen/isabellramsvik/internal/model"
	"github.com/ekaspersen/isabellramsvik/internal/service"
	"github.com/ekaspersen/isabellramsvik/internal/shared"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Users   *service.UserService
	Catalog *service.CatalogService
	Inbox   *service.InboxService
}

func NewHandler(users *service.UserService, catalog *service.CatalogService, inbox *service.InboxService) *Handler {
	return &Handler{Users: users, Catalog: catalog, Inbox: inbox}
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, model.Response{Success: true, Data: data})
}

// respondPage всегда отдаёт массив в data, даже на пустой странице
func respondPage[T any](c *gin.Context, items []T, p shared.Pagination, total int) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Data:    items,
		Meta: &model.Meta{
			Page:  p.Page,
			Limit: p.Limit,
			Total: total,
			Pages: p.Pages(total),
		},
	})
}

// respondError переводит ошибку сервиса в конверт с кодом и статусом
func respondError(c *gin.Context, err error) {
	if appErr, ok := shared.AsAppError(err); ok {
		c.JSON(appErr.Status, model.Response{
			Success: false,
			Error:   &model.ErrorInfo{Message: appErr.Message, Code: appErr.Code},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, model.Response{
		Success: false,
		Error:   &model.ErrorInfo{Message: err.Error(), Code: shared.CodeDatabase},
	})
}

func respondValidation(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, model.Response{
		Success: false,
		Error:   &model.ErrorInfo{Message: message, Code: shared.CodeValidation},
	})
}

func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.Response{
				Success: false,
				Error:   &model.ErrorInfo{Message: "Missing token", Code: "UNAUTHORIZED"},
			})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")
		userID, err := service.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.Response{
				Success: false,
				Error:   &model.ErrorInfo{Message: "Invalid token", Code: "UNAUTHORIZED"},
			})
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

// Login обрабатывает вход администратора
// @Summary Вход в админку
// @Tags auth
// @Accept json
// @Produce json
// @Param input body model.LoginRequest true "Учетные данные"
// @Success 200 {object} model.Response{data=model.TokenResponse}
// @Failure 401 {object} model.Response
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var input model.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, "Invalid input")
		return
	}
	access, refresh, err := h.Users.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, model.Response{
			Success: false,
			Error:   &model.ErrorInfo{Message: "Invalid credentials", Code: "UNAUTHORIZED"},
		})
		return
	}
	respondData(c, http.StatusOK, model.TokenResponse{AccessToken: access, RefreshToken: refresh})
}

// Refresh обновляет пару токенов по refresh токену
// @Summary Обновление токенов
// @Tags auth
// @Accept json
// @Produce json
// @Param input body model.RefreshRequest true "Refresh токен"
// @Success 200 {object} model.Response{data=model.TokenResponse}
// @Failure 401 {object} model.Response
// @Router /auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var input model.RefreshRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, "Invalid input")
		return
	}
	access, refresh, err := h.Users.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, model.Response{
			Success: false,
			Error:   &model.ErrorInfo{Message: "Invalid refresh token", Code: "UNAUTHORIZED"},
		})
		return
	}
	respondData(c, http.StatusOK, model.TokenResponse{AccessToken: access, RefreshToken: refresh})
}

// GetProfile возвращает текущего администратора
// @Summary Профиль администратора
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Response{data=model.ProfileResponse}
// @Router /profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")
	user, err := h.Users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, shared.NotFoundError("user not found"))
		return
	}
	respondData(c, http.StatusOK, model.ProfileResponse{ID: user.ID, Email: user.Email, Name: user.Name})
}
