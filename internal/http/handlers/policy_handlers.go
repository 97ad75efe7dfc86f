package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// PolicyHandlers exposes runtime management of authorization rules.
type PolicyHandlers struct {
	policySvc domain.PolicyService
}

// NewPolicyHandlers creates new policy handlers
func NewPolicyHandlers(policySvc domain.PolicyService) *PolicyHandlers {
	return &PolicyHandlers{policySvc: policySvc}
}

// PolicyRequest represents one authorization rule
type PolicyRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

// List returns all stored policies
func (h *PolicyHandlers) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.policySvc.GetPolicies()})
}

// Add stores a new policy rule
func (h *PolicyHandlers) Add(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.policySvc.AddPolicy(req.Role, req.Resource, req.Action); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Policy not added"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"message": "Policy added"}})
}

// Remove deletes a policy rule
func (h *PolicyHandlers) Remove(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.policySvc.RemovePolicy(req.Role, req.Resource, req.Action); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Policy not removed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Policy removed"}})
}
