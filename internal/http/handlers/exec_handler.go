// README: Field-executive handlers for checklist, pickup, and hub delivery.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"buyback/internal/http/middleware"
	"buyback/internal/modules/order"
	"buyback/internal/types"
)

type ExecHandler struct {
	order *order.Service
}

func NewExecHandler(svc *order.Service) *ExecHandler {
	return &ExecHandler{order: svc}
}

// ListOrders returns the orders assigned to the calling rider.
func (h *ExecHandler) ListOrders(c *gin.Context) {
	orders, err := h.order.List(c.Request.Context(), order.Filter{
		RiderID: types.ID(middleware.ActorID(c)),
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

type setCheckReq struct {
	Checked bool `json:"checked"`
}

// SetCheck toggles one checklist item for the rider's session. Un-ticking an
// item after completing the list re-blocks the pickup.
func (h *ExecHandler) SetCheck(c *gin.Context) {
	var req setCheckReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	orderID := types.ID(c.Param("id"))
	riderID := types.ID(middleware.ActorID(c))
	item := order.CheckItem(c.Param("item"))

	if err := h.order.SetCheck(c.Request.Context(), orderID, riderID, item, req.Checked); err != nil {
		writeDomainError(c, err)
		return
	}
	list, err := h.order.Checklist(c.Request.Context(), orderID, riderID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"checklist":      list,
		"fully_verified": list.FullyVerified(),
	})
}

// ConfirmPickup finalizes the door-step handover. The quoted price shown to
// the consumer is the order's locked price; it is never recomputed here.
func (h *ExecHandler) ConfirmPickup(c *gin.Context) {
	err := h.order.ConfirmPickup(c.Request.Context(), order.ConfirmPickupCommand{
		OrderID: types.ID(c.Param("id")),
		RiderID: types.ID(middleware.ActorID(c)),
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": order.StatusPickedUp})
}

func (h *ExecHandler) Deliver(c *gin.Context) {
	err := h.order.Deliver(c.Request.Context(), order.DeliverCommand{
		OrderID: types.ID(c.Param("id")),
		RiderID: types.ID(middleware.ActorID(c)),
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": order.StatusCompleted})
}
