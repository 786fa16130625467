package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"deudasBack/internal/models"
	"deudasBack/internal/services"
)

type DebtHandler struct {
	Service *services.DebtService
}

type registrarDeudaRequest struct {
	NumeroDocumento  string  `json:"numero_documento"`
	Empresa          string  `json:"empresa"`
	Monto            float64 `json:"monto"`
	FechaVencimiento string  `json:"fecha_vencimiento"`
	Estado           string  `json:"estado"`
	Tipo             string  `json:"tipo"`

	// compra
	NumeroFactura string `json:"numero_factura"`
	FechaCompra   string `json:"fecha_compra"`
	MetodoPago    string `json:"metodo_pago"`

	// servicio
	ReferenciaServicio string `json:"referencia_servicio"`

	// impuesto
	DetalleCobranza string `json:"detalle_cobranza"`
	Periodo         string `json:"periodo"`
}

func (req *registrarDeudaRequest) toDebt(kind string) (models.Debt, error) {
	fecha, err := parseFecha(req.FechaVencimiento)
	if err != nil {
		return models.Debt{}, err
	}
	debt := models.Debt{
		NumeroDocumento:  req.NumeroDocumento,
		Empresa:          req.Empresa,
		Monto:            req.Monto,
		FechaVencimiento: fecha,
		Estado:           req.Estado,
		Tipo:             req.Tipo,
		Kind:             kind,
	}
	switch kind {
	case models.KindCompra:
		compra := &models.CompraDetalle{
			NumeroFactura: req.NumeroFactura,
			MetodoPago:    req.MetodoPago,
		}
		if req.FechaCompra != "" {
			fc, err := parseFecha(req.FechaCompra)
			if err != nil {
				return models.Debt{}, err
			}
			compra.FechaCompra = &fc
		}
		debt.Compra = compra
	case models.KindServicio:
		debt.Servicio = &models.ServicioDetalle{ReferenciaServicio: req.ReferenciaServicio}
	case models.KindImpuesto:
		impuesto := &models.ImpuestoDetalle{DetalleCobranza: req.DetalleCobranza}
		if req.Periodo != "" {
			p, err := parseFecha(req.Periodo)
			if err != nil {
				return models.Debt{}, err
			}
			impuesto.Periodo = &p
		}
		debt.Impuesto = impuesto
	}
	return debt, nil
}

func (h *DebtHandler) registrar(w http.ResponseWriter, r *http.Request, kind string) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req registrarDeudaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.NumeroDocumento == "" || req.Monto <= 0 {
		http.Error(w, "numero_documento and positive monto are required", http.StatusBadRequest)
		return
	}

	debt, err := req.toDebt(kind)
	if err != nil {
		http.Error(w, "Invalid date format, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	created, err := h.Service.RegistrarDeuda(r.Context(), userID, debt)
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *DebtHandler) RegistrarCompra(w http.ResponseWriter, r *http.Request) {
	h.registrar(w, r, models.KindCompra)
}

func (h *DebtHandler) RegistrarServicio(w http.ResponseWriter, r *http.Request) {
	h.registrar(w, r, models.KindServicio)
}

func (h *DebtHandler) RegistrarImpuesto(w http.ResponseWriter, r *http.Request) {
	h.registrar(w, r, models.KindImpuesto)
}

func (h *DebtHandler) ConsultarDeudas(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		http.Error(w, "Invalid month", http.StatusBadRequest)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "Invalid year", http.StatusBadRequest)
		return
	}

	debts, err := h.Service.ConsultarDeudas(r.Context(), userID, month, year)
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if debts == nil {
		debts = []models.Debt{}
	}
	json.NewEncoder(w).Encode(debts)
}

func (h *DebtHandler) VencenHoy(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	debts, err := h.Service.DeudasVencenHoy(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if debts == nil {
		debts = []models.Debt{}
	}
	json.NewEncoder(w).Encode(debts)
}

func (h *DebtHandler) MarcarPagada(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid debt ID", http.StatusBadRequest)
		return
	}

	debt, err := h.Service.MarcarPagada(r.Context(), userID, id)
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	json.NewEncoder(w).Encode(debt)
}
