package handlers

import (
	"context"
	"net/http"
	"time"

	"practice-service/internal/bank"

	"github.com/gin-gonic/gin"
)

// ReadinessCheck reports whether one dependency can serve requests.
type ReadinessCheck func(ctx context.Context) error

type HealthHandler struct {
	bank   *bank.Bank
	checks map[string]ReadinessCheck
}

func NewHealthHandler(questionBank *bank.Bank, checks map[string]ReadinessCheck) *HealthHandler {
	return &HealthHandler{
		bank:   questionBank,
		checks: checks,
	}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "practice-service",
	})
}

// Ready fails while no questions are loaded or any dependency check fails.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	ready := h.bank.Size() > 0
	results := gin.H{"questions": h.bank.Size()}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			ready = false
			results[name] = err.Error()
			continue
		}
		results[name] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"checks": results,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"checks": results,
	})
}
