// README: Admin handlers for rule edits, rider onboarding, and assignment.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"buyback/internal/http/middleware"
	"buyback/internal/modules/order"
	"buyback/internal/modules/quote"
	"buyback/internal/modules/rider"
	"buyback/internal/types"
)

type AdminHandler struct {
	quote *quote.Service
	order *order.Service
	rider *rider.Service
}

func NewAdminHandler(quoteSvc *quote.Service, orderSvc *order.Service, riderSvc *rider.Service) *AdminHandler {
	return &AdminHandler{quote: quoteSvc, order: orderSvc, rider: riderSvc}
}

// UpsertRule creates or edits one deduction rule. Writing an existing
// (category, question, answer) key updates it in place.
func (h *AdminHandler) UpsertRule(c *gin.Context) {
	var r quote.Rule
	if err := c.ShouldBindJSON(&r); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.quote.UpsertRule(c.Request.Context(), r); err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, r)
}

func (h *AdminHandler) ListRules(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		writeError(c, http.StatusBadRequest, "missing category")
		return
	}
	rules, err := h.quote.ListRules(c.Request.Context(), category)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"rules": rules})
}

type assignReq struct {
	RiderID string `json:"rider_id"`
}

func (h *AdminHandler) Assign(c *gin.Context) {
	id := c.Param("id")
	var req assignReq
	if err := c.ShouldBindJSON(&req); err != nil || req.RiderID == "" {
		writeError(c, http.StatusBadRequest, "missing rider_id")
		return
	}
	err := h.order.Assign(c.Request.Context(), order.AssignCommand{
		OrderID: types.ID(id),
		RiderID: types.ID(req.RiderID),
		AdminID: types.ID(middleware.ActorID(c)),
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": order.StatusAssigned, "rider_id": req.RiderID})
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.order.List(c.Request.Context(), order.Filter{
		Status:  order.Status(c.Query("status")),
		RiderID: types.ID(c.Query("rider_id")),
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	views := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderView(o))
	}
	writeJSON(c, http.StatusOK, gin.H{"orders": views})
}

type createRiderReq struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (h *AdminHandler) CreateRider(c *gin.Context) {
	var req createRiderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	r, err := h.rider.Create(c.Request.Context(), rider.CreateCommand{
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, riderView(r))
}

func (h *AdminHandler) ListRiders(c *gin.Context) {
	riders, err := h.rider.List(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	views := make([]gin.H, 0, len(riders))
	for _, r := range riders {
		views = append(views, riderView(r))
	}
	writeJSON(c, http.StatusOK, gin.H{"riders": views})
}

type riderStatusReq struct {
	Status string `json:"status"`
}

func (h *AdminHandler) SetRiderStatus(c *gin.Context) {
	var req riderStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	err := h.rider.SetStatus(c.Request.Context(), types.ID(c.Param("id")), rider.Status(req.Status))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": req.Status})
}

func (h *AdminHandler) DeleteRider(c *gin.Context) {
	if err := h.rider.Delete(c.Request.Context(), types.ID(c.Param("id"))); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func riderView(r *rider.Rider) gin.H {
	return gin.H{
		"rider_id": r.ID,
		"name":     r.Name,
		"phone":    r.Phone,
		"status":   r.Status,
	}
}
