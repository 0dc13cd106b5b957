package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/lucasSouza225/cadastroUsuario/internal/common/errors"
	"github.com/lucasSouza225/cadastroUsuario/internal/common/middleware"
	"github.com/lucasSouza225/cadastroUsuario/internal/features/user/models"
	"github.com/lucasSouza225/cadastroUsuario/internal/features/user/repository"
	"github.com/lucasSouza225/cadastroUsuario/internal/features/user/service"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}

// @Summary Create user
// @Description Create a new user. The store assigns the id.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.CreateUserRequest true "User data"
// @Success 201 {object} models.User "Created user"
// @Failure 400 {object} models.ErrorResponse "Validation error"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input models.CreateUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.AbortWithError(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "Invalid request body"))
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), input)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// @Summary List users
// @Description List users, optionally filtered by exact match on name, email and age (AND semantics).
// @Tags users
// @Produce json
// @Param name query string false "Exact name"
// @Param email query string false "Exact email"
// @Param age query int false "Exact age"
// @Success 200 {array} models.User "Users"
// @Failure 400 {object} models.ErrorResponse "Invalid age filter"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	filter, err := repository.FilterFromQuery(c.Query("name"), c.Query("email"), c.Query("age"))
	if err != nil {
		middleware.AbortWithError(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "Invalid filter"))
		return
	}

	users, err := h.service.ListUsers(c.Request.Context(), filter)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary Update user
// @Description Replace name, age and email of an existing user.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body models.UpdateUserRequest true "User data"
// @Success 201 {object} models.User "Updated user"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		middleware.AbortWithError(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "Invalid user ID format"))
		return
	}

	var input models.UpdateUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.AbortWithError(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "Invalid request body"))
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), id, input)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	// Replies 201 rather than 200. Existing API consumers assert this
	// status on update; changing it would break them.
	c.JSON(http.StatusCreated, user)
}

// @Summary Delete user
// @Description Remove a user permanently.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.DeleteResponse "Confirmation"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		middleware.AbortWithError(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "Invalid user ID format"))
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DeleteResponse{Message: "user deleted successfully"})
}
