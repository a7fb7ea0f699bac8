package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/service"
)

// AccountsHandler exposes registration and login for users and companies.
type AccountsHandler struct {
	auth *service.AuthService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(authService *service.AuthService) *AccountsHandler {
	return &AccountsHandler{auth: authService}
}

// RegisterUser handles POST /auth/users/register.
func (h *AccountsHandler) RegisterUser(c *fiber.Ctx) error {
	var req dto.UserRegisterRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, token, err := h.auth.RegisterUser(c.UserContext(), service.RegisterUserInput{
		Login:    req.Login,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(authBody(userAccount(user), token))
}

// LoginUser handles POST /auth/users/login.
func (h *AccountsHandler) LoginUser(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, token, err := h.auth.LoginUser(c.UserContext(), req.Login, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(authBody(userAccount(user), token))
}

// RegisterCompany handles POST /auth/companies/register.
func (h *AccountsHandler) RegisterCompany(c *fiber.Ctx) error {
	var req dto.CompanyRegisterRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	company, token, err := h.auth.RegisterCompany(c.UserContext(), service.RegisterCompanyInput{
		Login:       req.Login,
		Email:       req.Email,
		FullName:    req.FullName,
		Password:    req.Password,
		TaxID:       req.NIP,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(authBody(companyAccount(company), token))
}

// LoginCompany handles POST /auth/companies/login.
func (h *AccountsHandler) LoginCompany(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	company, token, err := h.auth.LoginCompany(c.UserContext(), req.Login, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(authBody(companyAccount(company), token))
}

func authBody(account dto.AccountResponse, token service.IssuedToken) fiber.Map {
	return fiber.Map{
		"data": fiber.Map{
			"account": account,
			"auth":    dto.AuthResponse{Token: token.Token, ExpiresAt: token.ExpiresAt},
		},
	}
}

func userAccount(u *domain.User) dto.AccountResponse {
	return dto.AccountResponse{
		ID:       u.ID.String(),
		Role:     domain.RoleUser.String(),
		Login:    u.Login,
		Email:    u.Email,
		FullName: u.FullName,
	}
}

func companyAccount(c *domain.Company) dto.AccountResponse {
	return dto.AccountResponse{
		ID:          c.ID.String(),
		Role:        domain.RoleCompany.String(),
		Login:       c.Login,
		Email:       c.Email,
		FullName:    c.FullName,
		CompanyName: c.CompanyName,
		NIP:         c.TaxID,
	}
}
