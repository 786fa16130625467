package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"deudasBack/internal/models"
	"deudasBack/internal/services"
)

type ScheduleHandler struct {
	Service *services.ScheduleService
}

type registrarCronogramaRequest struct {
	NumeroDocumento  string  `json:"numero_documento"`
	Empresa          string  `json:"empresa"`
	Monto            float64 `json:"monto"`
	FechaVencimiento string  `json:"fecha_vencimiento"`
	Estado           string  `json:"estado"`
	Tipo             string  `json:"tipo"`
	TasaInteres      float64 `json:"tasa_interes"`
	PlazoMeses       int     `json:"plazo_meses"`
}

func (h *ScheduleHandler) RegistrarCronograma(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req registrarCronogramaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.NumeroDocumento == "" {
		http.Error(w, "numero_documento is required", http.StatusBadRequest)
		return
	}

	fecha, err := parseFecha(req.FechaVencimiento)
	if err != nil {
		http.Error(w, "Invalid date format, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	debt := models.Debt{
		NumeroDocumento:  req.NumeroDocumento,
		Empresa:          req.Empresa,
		Monto:            req.Monto,
		FechaVencimiento: fecha,
		Estado:           req.Estado,
		Tipo:             req.Tipo,
		Cronograma: &models.CronogramaDetalle{
			TasaInteres: req.TasaInteres,
			PlazoMeses:  req.PlazoMeses,
		},
	}

	created, err := h.Service.RegistrarCronograma(r.Context(), userID, debt)
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ScheduleHandler) ObtenerCronograma(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := h.Service.ObtenerCronograma(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if entries == nil {
		entries = []models.ScheduleEntryView{}
	}
	json.NewEncoder(w).Encode(entries)
}

func (h *ScheduleHandler) MarcarPagoCronograma(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid schedule entry ID", http.StatusBadRequest)
		return
	}

	entry, err := h.Service.MarcarPagoCronograma(r.Context(), userID, id)
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	json.NewEncoder(w).Encode(entry)
}
