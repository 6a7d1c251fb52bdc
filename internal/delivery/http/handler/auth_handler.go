package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/usecase"
	"hospital-portal/pkg/response"
	"hospital-portal/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

func (h *AuthHandler) LoginPatient(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.authUsecase.LoginPatient)
}

func (h *AuthHandler) LoginDoctor(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.authUsecase.LoginDoctor)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, call func(ctx context.Context, req *dto.LoginRequest) ([]*http.Cookie, error)) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	cookies, err := call(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid hospital number or password")
			return
		}
		relayUpstreamError(w, err, "Failed to log in")
		return
	}

	for _, cookie := range cookies {
		http.SetCookie(w, cookie)
	}
	response.Success(w, http.StatusOK, "Logged in successfully", nil)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		relayUpstreamError(w, err, "Failed to register")
		return
	}

	response.Success(w, http.StatusCreated, "Registered successfully", result)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authUsecase.Logout(r.Context()); err != nil {
		if errors.Is(err, usecase.ErrNotAuthenticated) {
			response.Unauthorized(w, "Not authenticated")
			return
		}
		relayUpstreamError(w, err, "Failed to log out")
		return
	}

	response.Success(w, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookies, err := h.authUsecase.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNotAuthenticated) {
			response.Unauthorized(w, "Not authenticated")
			return
		}
		relayUpstreamError(w, err, "Failed to refresh session")
		return
	}

	for _, cookie := range cookies {
		http.SetCookie(w, cookie)
	}
	response.Success(w, http.StatusOK, "Session refreshed", nil)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, err := h.authUsecase.Me(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNotAuthenticated) {
			response.Unauthorized(w, "Not authenticated")
			return
		}
		relayUpstreamError(w, err, "Failed to load session")
		return
	}

	response.Success(w, http.StatusOK, "Session retrieved successfully", session)
}
