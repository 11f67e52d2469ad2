package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"flora-partner-assignment/internal/logx"
)

// AssignmentHandler handles the admin assignment endpoints.
type AssignmentHandler struct {
	usecase assignmentUsecase
	logger  logx.Logger
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(logger logx.Logger, uc assignmentUsecase) *AssignmentHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &AssignmentHandler{usecase: uc, logger: logger}
}

// ZonePartners handles GET /zones/{zone}/partners.
// Partners are listed in rotation order.
func (h *AssignmentHandler) ZonePartners(w http.ResponseWriter, r *http.Request) {
	list, err := h.usecase.EligiblePartners(r.Context(), chi.URLParam(r, "zone"))
	if err != nil {
		writeServiceError(h.logger, w, r, err, "zone not found")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, partnersToResponse(list))
}

// NextPartner handles GET /zones/{zone}/next-partner?exclude=ID.
// It previews the rotation and changes nothing.
func (h *AssignmentHandler) NextPartner(w http.ResponseWriter, r *http.Request) {
	exclude := strings.TrimSpace(r.URL.Query().Get("exclude"))
	p, err := h.usecase.NextPartner(r.Context(), chi.URLParam(r, "zone"), exclude)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "zone not found")
		return
	}
	resp := nextPartnerResponse{}
	if p != nil {
		dto := partnerToResponse(*p)
		resp.Partner = &dto
	}
	writeJSON(h.logger, w, r, http.StatusOK, resp)
}

// AutoAssign handles POST /orders/{id}/auto-assign.
// A missing partner is not an error: the response carries assigned=false.
func (h *AssignmentHandler) AutoAssign(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req autoAssignRequest
	if ok := decodeOptionalJSON(h.logger, w, r, &req); !ok {
		return
	}

	o, ok, err := h.usecase.AutoAssignByID(r.Context(), id, req.toOptions())
	if err != nil {
		writeServiceError(h.logger, w, r, err, "order not found")
		return
	}
	resp := assignmentResponse{Assigned: ok}
	if ok {
		resp.Order = orderToResponse(o)
	}
	writeJSON(h.logger, w, r, http.StatusOK, resp)
}

// Assign handles POST /orders/{id}/assign, the admin override.
func (h *AssignmentHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req assignRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	partnerID := strings.TrimSpace(req.PartnerID)
	if partnerID == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "partner_id is required")
		return
	}

	o, err := h.usecase.AssignSpecificByID(r.Context(), id, partnerID)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "order or partner not found")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, assignmentResponse{Assigned: true, Order: orderToResponse(o)})
}

// Decline handles POST /orders/{id}/decline.
func (h *AssignmentHandler) Decline(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req declineRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	partnerID := strings.TrimSpace(req.PartnerID)
	if partnerID == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "partner_id is required")
		return
	}

	ok, err := h.usecase.HandleDecline(r.Context(), id, partnerID)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "order not found")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, assignmentResponse{Assigned: ok})
}
