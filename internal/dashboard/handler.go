// HTTP surface for the dashboard engine, consumed by the Gateway / web
// client.
//
// Routes:
//
//	GET    /orders                              → filtered+sorted order list
//	POST   /orders                              → create order
//	PUT    /orders/{id}                         → update order
//	DELETE /orders/{id}                         → delete order
//	POST   /orders/{id}/close                   → close order manually
//	POST   /orders/{id}/analyze                 → trigger analysis
//	POST   /orders/{id}/expand                  → toggle analysis panel
//	POST   /orders/{id}/select                  → select order
//	GET    /orders/{id}/candidates              → candidate list for order
//	DELETE /candidates/{id}                     → delete candidate everywhere
//	POST   /candidates/{id}/select              → select candidate
//	GET    /selection                           → current order+candidate selection
//
// Destructive routes assume the client already asked the user for
// confirmation; the engine does not prompt.
package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Handler exposes an Engine over HTTP.
type Handler struct {
	engine *Engine
}

// NewHandler returns a configured Handler.
func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

// RegisterRoutes mounts all dashboard routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/orders", h.handleOrders)
	mux.HandleFunc("/orders/", h.handleOrderAction)
	mux.HandleFunc("/candidates/", h.handleCandidateAction)
	mux.HandleFunc("/selection", h.handleSelection)
}

// ─── Route dispatch ───────────────────────────────────────────────────────────

// handleOrders handles GET/POST /orders.
func (h *Handler) handleOrders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listOrders(w, r)
	case http.MethodPost:
		h.createOrder(w, r)
	default:
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleOrderAction handles /orders/{id} and /orders/{id}/{action}.
func (h *Handler) handleOrderAction(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case len(parts) == 2:
		orderID := parts[1]
		switch r.Method {
		case http.MethodPut:
			h.updateOrder(w, r, orderID)
		case http.MethodDelete:
			h.deleteOrder(w, r, orderID)
		default:
			jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		}

	case len(parts) == 3:
		orderID, action := parts[1], parts[2]
		if action == "candidates" {
			if r.Method != http.MethodGet {
				jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
				return
			}
			jsonOK(w, h.engine.CandidatesFor(orderID))
			return
		}
		if r.Method != http.MethodPost {
			jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		switch action {
		case "close":
			h.orderErrOnly(w, h.engine.CloseOrder(r.Context(), orderID))
		case "analyze":
			h.orderErrOnly(w, h.engine.Analyze(r.Context(), orderID))
		case "expand":
			h.orderErrOnly(w, h.engine.ToggleExpand(r.Context(), orderID))
		case "select":
			h.engine.SelectOrder(r.Context(), orderID)
			jsonOK(w, map[string]string{"selectedOrderId": orderID})
		default:
			jsonError(w, fmt.Sprintf("unknown action %q", action), http.StatusNotFound)
		}

	default:
		jsonError(w, "invalid path", http.StatusNotFound)
	}
}

// handleCandidateAction handles /candidates/{id} and /candidates/{id}/select.
func (h *Handler) handleCandidateAction(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 2 || len(parts) > 3 {
		jsonError(w, "invalid path", http.StatusNotFound)
		return
	}

	candidateID, err := strconv.Atoi(parts[1])
	if err != nil {
		jsonError(w, "candidate id must be an integer", http.StatusBadRequest)
		return
	}

	if len(parts) == 2 {
		if r.Method != http.MethodDelete {
			jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.engine.DeleteCandidate(r.Context(), candidateID)
		jsonOK(w, map[string]string{"status": "deleted"})
		return
	}

	if parts[2] != "select" || r.Method != http.MethodPost {
		jsonError(w, fmt.Sprintf("unknown action %q", parts[2]), http.StatusNotFound)
		return
	}

	c, ok := h.engine.FindCandidate(candidateID)
	if !ok {
		jsonError(w, "candidate not found", http.StatusNotFound)
		return
	}
	h.engine.SelectCandidate(c)
	jsonOK(w, c)
}

// handleSelection handles GET /selection.
func (h *Handler) handleSelection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := struct {
		SelectedOrder     any `json:"selectedOrder"`
		SelectedCandidate any `json:"selectedCandidate"`
	}{}
	if order, ok := h.engine.SelectedOrder(); ok {
		resp.SelectedOrder = order
	}
	if c, ok := h.engine.SelectedCandidate(); ok {
		resp.SelectedCandidate = c
	}
	jsonOK(w, resp)
}

// ─── Individual handlers ──────────────────────────────────────────────────────

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filterBy := q.Get("filter")
	sortBy := q.Get("sort")
	sortOrder := q.Get("order")
	if sortBy == "" {
		sortBy = SortByDate
	}
	if sortOrder == "" {
		sortOrder = SortDesc
	}

	jsonOK(w, h.engine.View(filterBy, sortBy, sortOrder))
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var fields OrderFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	order, err := h.engine.CreateOrder(r.Context(), fields)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	jsonOK(w, order)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request, orderID string) {
	var fields OrderFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	order, err := h.engine.UpdateOrder(r.Context(), orderID, fields)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	jsonOK(w, order)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request, orderID string) {
	if err := h.engine.DeleteOrder(r.Context(), orderID); err != nil {
		writeEngineError(w, err)
		return
	}
	jsonOK(w, map[string]string{"status": "deleted"})
}

// orderErrOnly writes a bare ok/err response for actions that return no body.
func (h *Handler) orderErrOnly(w http.ResponseWriter, err error) {
	if err != nil {
		writeEngineError(w, err)
		return
	}
	jsonOK(w, map[string]string{"status": "ok"})
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func writeEngineError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	switch {
	case errors.Is(err, ErrNotFound):
		jsonError(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &verr):
		jsonError(w, verr.Msg, http.StatusBadRequest)
	default:
		jsonError(w, "internal error", http.StatusInternalServerError)
	}
}

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
