// README: Quote and schedule-option handlers for the consumer flow.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"buyback/internal/modules/order"
	"buyback/internal/modules/quote"
	"buyback/internal/types"
)

type QuoteHandler struct {
	quote *quote.Service
}

func NewQuoteHandler(svc *quote.Service) *QuoteHandler {
	return &QuoteHandler{quote: svc}
}

type quoteReq struct {
	VariantID string         `json:"variant_id"`
	Answers   map[string]any `json:"answers"`
}

// Create computes an offer for a variant and condition questionnaire. The
// result is ephemeral; revisiting this step recomputes the same price.
func (h *QuoteHandler) Create(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.VariantID == "" {
		writeError(c, http.StatusBadRequest, "missing variant_id")
		return
	}
	answers, err := quote.ParseAnswers(req.Answers)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	q, err := h.quote.QuoteDevice(c.Request.Context(), types.ID(req.VariantID), answers)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, q)
}

type dateOptions struct {
	Date  string       `json:"date"`
	Slots []order.Slot `json:"slots"`
}

// ScheduleOptions returns the offered dates, the slots still open per date,
// and express eligibility. Volatile by design: the answer depends on the
// clock, so clients must re-fetch before confirming.
func (h *QuoteHandler) ScheduleOptions(c *gin.Context) {
	now := time.Now()
	dates := order.AvailableDates(now)
	options := make([]dateOptions, 0, len(dates))
	for _, d := range dates {
		options = append(options, dateOptions{
			Date:  d.Format("2006-01-02"),
			Slots: order.AvailableSlots(now, d),
		})
	}
	writeJSON(c, http.StatusOK, gin.H{
		"dates":            options,
		"express_eligible": order.ExpressEligible(now),
	})
}
