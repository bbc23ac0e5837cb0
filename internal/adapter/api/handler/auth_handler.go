package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Korea-Traffic-Solution/backend/internal/usecase"
	"github.com/Korea-Traffic-Solution/backend/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type adminResponse struct {
	ID        uint   `json:"id"`
	LoginID   string `json:"loginId"`
	Name      string `json:"name"`
	Region    string `json:"region"`
	Email     string `json:"email"`
	Classname string `json:"classname"`
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req usecase.SignupInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	admin, err := h.authUseCase.Signup(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, adminResponse{
		ID:        admin.ID,
		LoginID:   admin.LoginID,
		Name:      admin.Name,
		Region:    admin.Region,
		Email:     admin.Email,
		Classname: admin.Classname,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
