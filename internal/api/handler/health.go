package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/buzzdeck/buzzdeck/internal/api/response"
	"github.com/buzzdeck/buzzdeck/internal/repository/postgres"
)

// HealthCheck handles GET /api/v1/health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Status  string `json:"status"`
	}{true, "ok"})
}

// ReadyCheck handles GET /api/v1/ready and verifies database connectivity
func ReadyCheck(db *postgres.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			response.Error(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}

		response.JSON(w, http.StatusOK, struct {
			Success bool   `json:"success"`
			Status  string `json:"status"`
		}{true, "ready"})
	}
}
