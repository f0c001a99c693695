// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"buyback/internal/http/handlers"
	"buyback/internal/http/middleware"
	"buyback/internal/modules/order"
	"buyback/internal/modules/quote"
	"buyback/internal/modules/rider"
)

type ServerDeps struct {
	Quote *quote.Service
	Order *order.Service
	Rider *rider.Service
}

type Server struct {
	quote *quote.Service
	order *order.Service
	rider *rider.Service
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		quote: deps.Quote,
		order: deps.Order,
		rider: deps.Rider,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging(), middleware.Identity())

	quoteHandler := handlers.NewQuoteHandler(s.quote)
	orderHandler := handlers.NewOrderHandler(s.order)
	adminHandler := handlers.NewAdminHandler(s.quote, s.order, s.rider)
	execHandler := handlers.NewExecHandler(s.order)

	consumer := r.Group("/api", middleware.RequireRole(middleware.RoleConsumer))
	{
		consumer.POST("/quotes", quoteHandler.Create)
		consumer.GET("/schedule/options", quoteHandler.ScheduleOptions)
		consumer.POST("/orders", orderHandler.Place)
		consumer.GET("/orders/:id", orderHandler.Get)
		consumer.POST("/orders/:id/cancel", orderHandler.Cancel)
	}

	admin := r.Group("/api/admin", middleware.RequireRole(middleware.RoleAdmin))
	{
		admin.POST("/rules", adminHandler.UpsertRule)
		admin.GET("/rules", adminHandler.ListRules)
		admin.GET("/orders", adminHandler.ListOrders)
		admin.POST("/orders/:id/assign", adminHandler.Assign)
		admin.POST("/riders", adminHandler.CreateRider)
		admin.GET("/riders", adminHandler.ListRiders)
		admin.PUT("/riders/:id/status", adminHandler.SetRiderStatus)
		admin.DELETE("/riders/:id", adminHandler.DeleteRider)
	}

	exec := r.Group("/api/exec", middleware.RequireRole(middleware.RoleExec))
	{
		exec.GET("/orders", execHandler.ListOrders)
		exec.PUT("/orders/:id/checks/:item", execHandler.SetCheck)
		exec.POST("/orders/:id/pickup", execHandler.ConfirmPickup)
		exec.POST("/orders/:id/deliver", execHandler.Deliver)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
