// README: Consumer order handlers for place/get/cancel.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"buyback/internal/http/middleware"
	"buyback/internal/modules/order"
	"buyback/internal/modules/quote"
	"buyback/internal/types"
)

type OrderHandler struct {
	order *order.Service
}

func NewOrderHandler(svc *order.Service) *OrderHandler {
	return &OrderHandler{order: svc}
}

type placeOrderReq struct {
	VariantID     string         `json:"variant_id"`
	Device        string         `json:"device"`
	Answers       map[string]any `json:"answers"`
	Address       string         `json:"address"`
	Lat           *float64       `json:"lat"`
	Lng           *float64       `json:"lng"`
	ScheduledDate string         `json:"scheduled_date"`
	Slot          string         `json:"slot"`
	Express       bool           `json:"express"`
}

func (h *OrderHandler) Place(c *gin.Context) {
	var req placeOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	answers, err := quote.ParseAnswers(req.Answers)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	var location *types.Point
	if req.Lat != nil && req.Lng != nil {
		location = &types.Point{Lat: *req.Lat, Lng: *req.Lng}
	}

	var scheduledDate time.Time
	if req.ScheduledDate != "" {
		scheduledDate, err = time.ParseInLocation("2006-01-02", req.ScheduledDate, time.Local)
		if err != nil {
			writeError(c, http.StatusBadRequest, "invalid scheduled_date")
			return
		}
	}

	o, err := h.order.Place(c.Request.Context(), order.PlaceCommand{
		ConsumerID:    types.ID(middleware.ActorID(c)),
		VariantID:     types.ID(req.VariantID),
		Device:        req.Device,
		Answers:       answers,
		Address:       req.Address,
		Location:      location,
		ScheduledDate: scheduledDate,
		Slot:          order.Slot(req.Slot),
		Express:       req.Express,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, orderView(o))
}

func (h *OrderHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing order id")
		return
	}
	o, err := h.order.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, orderView(o))
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing order id")
		return
	}
	err := h.order.Cancel(c.Request.Context(), order.CancelCommand{
		OrderID:   types.ID(id),
		ActorType: "consumer",
		ActorID:   types.ID(middleware.ActorID(c)),
		Reason:    "user_cancel",
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": order.StatusCancelled})
}

// orderView renders one order for API responses. A rider id pointing at a
// deleted rider still renders; display treats it like any assignment.
func orderView(o *order.Order) gin.H {
	v := gin.H{
		"order_id":     o.ID,
		"order_number": o.Number,
		"device":       o.Device,
		"variant_id":   o.VariantID,
		"price":        o.Price,
		"status":       o.Status,
		"address":      o.Address,
		"express":      o.Express,
		"created_at":   o.CreatedAt,
	}
	if o.Location != nil {
		v["location"] = o.Location
	}
	if o.RiderID != nil {
		v["rider_id"] = *o.RiderID
	}
	if o.ScheduledDate != nil {
		v["scheduled_date"] = o.ScheduledDate.Format("2006-01-02")
	}
	if o.ScheduledSlot != order.SlotNone {
		v["scheduled_slot"] = o.ScheduledSlot
	}
	return v
}
