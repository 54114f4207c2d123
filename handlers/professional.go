package handlers

import (
	"net/http"

	"savayas/models"
	"savayas/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterProfessionalHandler handles POST /api/auth/register/professional.
func (h *ProfessionalHandler) RegisterProfessionalHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ProfessionalRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.ProfessionalService.Register(req)
	if err != nil {
		logger.Error("Professional registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListProfessionalsHandler handles GET /api/professionals. Only approved
// profiles are listed.
func (h *ProfessionalHandler) ListProfessionalsHandler(c *gin.Context) {
	profs, err := h.ProfessionalService.ListApproved()
	if err != nil {
		utils.GetLogger().Error("Failed to list professionals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve professionals"})
		return
	}
	c.JSON(http.StatusOK, profs)
}

// GetProfessionalHandler handles GET /api/professionals/:id.
func (h *ProfessionalHandler) GetProfessionalHandler(c *gin.Context) {
	prof, err := h.ProfessionalService.GetProfile(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prof)
}

// GetOwnProfileHandler handles GET /api/professionals/me for the
// authenticated professional.
func (h *ProfessionalHandler) GetOwnProfileHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	prof, err := h.ProfessionalService.GetProfileByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prof)
}

// UpdateProfessionalHandler handles PATCH /api/professionals/me.
func (h *ProfessionalHandler) UpdateProfessionalHandler(c *gin.Context) {
	prof, ok := h.ownProfile(c)
	if !ok {
		return
	}

	var req models.ProfessionalUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.ProfessionalService.UpdateProfile(prof.ID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProfessionalHandler handles DELETE /api/professionals/me.
func (h *ProfessionalHandler) DeleteProfessionalHandler(c *gin.Context) {
	prof, ok := h.ownProfile(c)
	if !ok {
		return
	}
	if err := h.ProfessionalService.DeleteProfile(prof.ID); err != nil {
		utils.GetLogger().Error("Failed to delete professional profile",
			zap.String("id", prof.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted"})
}

// UpsertAvailabilityHandler handles PUT /api/availability.
func (h *ProfessionalHandler) UpsertAvailabilityHandler(c *gin.Context) {
	prof, ok := h.ownProfile(c)
	if !ok {
		return
	}

	var req models.UpsertAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rule, err := h.ProfessionalService.UpsertAvailability(prof.ID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rule)
}

// ListAvailabilityHandler handles GET /api/availability/:professionalId.
func (h *ProfessionalHandler) ListAvailabilityHandler(c *gin.Context) {
	rules, err := h.ProfessionalService.ListAvailability(c.Param("professionalId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rules)
}

// DeleteAvailabilityHandler handles DELETE /api/availability/:ruleId.
func (h *ProfessionalHandler) DeleteAvailabilityHandler(c *gin.Context) {
	prof, ok := h.ownProfile(c)
	if !ok {
		return
	}
	if err := h.ProfessionalService.DeleteAvailability(prof.ID, c.Param("ruleId")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability rule deleted"})
}

// GetAllProfessionalsHandler handles GET /api/admin/professionals.
func (h *ProfessionalHandler) GetAllProfessionalsHandler(c *gin.Context) {
	profs, err := h.ProfessionalService.ListAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list professionals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve professionals"})
		return
	}
	c.JSON(http.StatusOK, profs)
}

// ApproveProfessionalHandler handles PUT /api/admin/professionals/:id/approve.
func (h *ProfessionalHandler) ApproveProfessionalHandler(c *gin.Context) {
	var req struct {
		Approved *bool `json:"approved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.ProfessionalService.Approve(c.Param("id"), *req.Approved); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Approval updated"})
}

// ownProfile resolves the caller's professional profile from the auth context.
func (h *ProfessionalHandler) ownProfile(c *gin.Context) (*models.Professional, bool) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	prof, err := h.ProfessionalService.GetProfileByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, false
	}
	return prof, true
}
