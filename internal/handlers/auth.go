package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"garinhca/models"
)

// LoginHandler обрабатывает POST /api/auth/login. Аутентификация
// бутафорская: принимаются любые непустые учетные данные.
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	user, ok, err := h.Users.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		h.Notifier.Failure("login failed", zap.Error(err))
		http.Error(w, "Login failed", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	h.Notifier.Success("login successful", zap.String("userId", user.ID))
	writeJSON(w, http.StatusOK, user)
}

// RegisterHandler обрабатывает POST /api/auth/register
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	user, ok, err := h.Users.Register(r.Context(), body.Name, body.Email, body.Password, body.Role)
	if err != nil {
		h.Notifier.Failure("registration failed", zap.Error(err))
		http.Error(w, "Registration failed", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Name, email, password and a poster/seeker role are required", http.StatusBadRequest)
		return
	}

	h.Notifier.Success("registration successful", zap.String("userId", user.ID))
	writeJSON(w, http.StatusOK, user)
}

// LogoutHandler завершает текущую сессию
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Users.Logout(r.Context()); err != nil {
		h.Notifier.Failure("logout failed", zap.Error(err))
		http.Error(w, "Logout failed", http.StatusInternalServerError)
		return
	}
	h.Notifier.Success("logged out")
	w.WriteHeader(http.StatusNoContent)
}

// MeHandler возвращает пользователя текущей сессии
func (h *Handler) MeHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := h.Users.Current()
	if !ok {
		http.Error(w, "Login required", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateProfileHandler обрабатывает PATCH /api/auth/profile
func (h *Handler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var patch models.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	ok, err := h.Users.UpdateProfile(r.Context(), patch)
	if err != nil {
		h.Notifier.Failure("profile update failed", zap.Error(err))
		http.Error(w, "Profile update failed", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Login required", http.StatusUnauthorized)
		return
	}

	user, _ := h.Users.Current()
	h.Notifier.Success("profile updated", zap.String("userId", user.ID))
	writeJSON(w, http.StatusOK, user)
}
