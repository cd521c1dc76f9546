package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/GlebRadaev/redstone-admin/internal/dto"
	"github.com/GlebRadaev/redstone-admin/internal/service/authservice"
	pkgauth "github.com/GlebRadaev/redstone-admin/pkg/auth"
	"github.com/GlebRadaev/redstone-admin/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth
type Service interface {
	Login(ctx context.Context, login, password string) (string, time.Time, error)
	Logout(ac pkgauth.AuthContext)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
//
//	@Summary		Admin login
//	@Description	Check the console admin credentials and issue a bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Login) == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Login and password are required")
		return
	}

	token, expiresAt, err := h.authService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// Logout godoc
//
//	@Summary		Admin logout
//	@Description	Revoke the current token and drop the open approval workflow
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Logged out"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Router			/api/admin/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ac, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	h.authService.Logout(ac)
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Logged out"})
}
