package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/product-manager/internal/auth"
	"go.uber.org/zap"
)

// LoginHandler godoc
// @Summary Authenticate the admin and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Authentication disabled"
// @Router /login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if s.Auth == nil {
		http.Error(w, "authentication is disabled", http.StatusNotFound)
		return
	}

	var credentials CredentialsRequest
	if err := readJSON(w, r, &credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if credentials.Username == "" || credentials.Password == "" {
		http.Error(w, "missing credentials", http.StatusBadRequest)
		return
	}

	token, err := s.Auth.Login(credentials.Username, credentials.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		s.Log.Warn("login failed", zap.String("username", credentials.Username))
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		s.Log.Error("could not generate token", zap.Error(err))
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	s.respond(w, http.StatusOK, LoginResult{Token: token})
}
