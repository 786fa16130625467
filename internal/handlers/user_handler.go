package handlers

import (
	"encoding/json"
	"net/http"

	"deudasBack/internal/models"
	"deudasBack/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if user.Correo == "" || user.Password == "" {
		http.Error(w, "correo and password are required", http.StatusBadRequest)
		return
	}

	tokens, err := h.Service.SignUp(r.Context(), user)
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(tokens)
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tokens, err := h.Service.SignIn(r.Context(), req.Correo, req.Password)
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	json.NewEncoder(w).Encode(tokens)
}
