// README: Schedule-options handler tests.
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestScheduleOptionsShape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewQuoteHandler(nil)
	r.GET("/api/schedule/options", h.ScheduleOptions)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule/options", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Dates []struct {
			Date  string   `json:"date"`
			Slots []string `json:"slots"`
		} `json:"dates"`
		ExpressEligible *bool `json:"express_eligible"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Dates) != 4 {
		t.Fatalf("expected 4 offered dates, got %d", len(body.Dates))
	}
	if body.ExpressEligible == nil {
		t.Fatalf("missing express_eligible")
	}
	// future dates always offer both slots regardless of the clock
	last := body.Dates[len(body.Dates)-1]
	if len(last.Slots) != 2 {
		t.Fatalf("expected both slots on the last offered date, got %v", last.Slots)
	}
}
