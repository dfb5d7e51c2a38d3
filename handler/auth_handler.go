package handler

import (
	"errors"
	"net/http"

	"github.com/doclibhq/doclib-be/middleware"
	"github.com/doclibhq/doclib-be/service"
	"github.com/doclibhq/doclib-be/types"
	"github.com/gin-gonic/gin"
)

type AuthHandler interface {
	HandleSignUp(c *gin.Context)
	HandleSignIn(c *gin.Context)
	HandleSignOut(c *gin.Context)
}

type authHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) AuthHandler {
	return &authHandler{
		authService: authService,
	}
}

func (h *authHandler) HandleSignUp(c *gin.Context) {
	var req types.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Email and password are required",
		})
		return
	}

	user, err := h.authService.SignUp(c, req.Email, req.Password)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, types.ErrUserExists) {
			status = http.StatusConflict
		}
		c.JSON(status, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   user,
	})
}

func (h *authHandler) HandleSignIn(c *gin.Context) {
	var req types.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	token, user, err := h.authService.SignIn(c, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, types.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, types.DataResponse{
				Status:  false,
				Message: "Invalid email or password",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.SignInResponse{
			AccessToken: token,
			Email:       user.Email,
		},
	})
}

func (h *authHandler) HandleSignOut(c *gin.Context) {
	token := middleware.TokenFromContext(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "No active session",
		})
		return
	}

	if err := h.authService.SignOut(c, token); err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
	})
}
