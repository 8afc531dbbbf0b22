package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ariefcatur/go-supplychain/internal/httpx"
)

type Handler struct{ Service *Service }

func (h *Handler) Register(r *chi.Mux) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Post("/otp/send", h.sendCode)
	r.Post("/otp/verify", h.verifyCode)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var in RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if in.Email == "" || in.Password == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	u, err := h.Service.Register(ctx, in)
	switch {
	case errors.Is(err, ErrEmailTaken):
		httpx.WriteMessage(w, http.StatusBadRequest, "Email already registered")
	case err != nil:
		httpx.WriteMessage(w, http.StatusInternalServerError, "error registering user")
	default:
		httpx.WriteJSON(w, http.StatusCreated, map[string]any{
			"message": "User registered successfully",
			"user":    u,
		})
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}

	res, err := h.Service.Login(r.Context(), req.Email, req.Password, req.Role)
	switch {
	case errors.Is(err, ErrUserNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrBadCredentials):
		httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrRoleNotGranted):
		httpx.WriteMessage(w, http.StatusForbidden, "Role not granted to this account")
	case err != nil:
		httpx.WriteMessage(w, http.StatusInternalServerError, "error logging in")
	case res.TwoFARequired:
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Verification code sent",
			"twoFA":   true,
			"role":    res.Role,
		})
	default:
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Login successful",
			"twoFA":   false,
			"role":    res.Role,
		})
	}
}

func (h *Handler) sendCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "email is required")
		return
	}

	err := h.Service.SendCode(r.Context(), req.Email)
	switch {
	case errors.Is(err, ErrUserNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "User not found")
	case err != nil:
		httpx.WriteMessage(w, http.StatusInternalServerError, "error sending code")
	default:
		httpx.WriteMessage(w, http.StatusOK, "Verification code sent")
	}
}

func (h *Handler) verifyCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Code == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "email and code are required")
		return
	}

	role, err := h.Service.VerifyCode(r.Context(), req.Email, req.Code)
	switch {
	case errors.Is(err, ErrBadCode):
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid or expired code")
	case errors.Is(err, ErrUserNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "User not found")
	case err != nil:
		httpx.WriteMessage(w, http.StatusInternalServerError, "error verifying code")
	default:
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Login successful",
			"role":    role,
		})
	}
}
