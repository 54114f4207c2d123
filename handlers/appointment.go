package handlers

import (
	"net/http"

	"savayas/models"
	"savayas/services/booking"
	"savayas/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bookingErrorStatus maps booking error codes onto HTTP statuses.
func bookingErrorStatus(err error) int {
	switch {
	case booking.IsNotFound(err):
		return http.StatusNotFound
	case booking.IsInvalidInterval(err):
		return http.StatusBadRequest
	case booking.IsConflict(err):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// ListSlotsHandler handles GET /api/professionals/:id/slots?date=YYYY-MM-DD.
func (h *AppointmentHandler) ListSlotsHandler(c *gin.Context) {
	professionalID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: date"})
		return
	}

	slots, err := h.BookingService.ListAvailableSlots(professionalID, date)
	if err != nil {
		status := bookingErrorStatus(err)
		if status == http.StatusInternalServerError {
			utils.GetLogger().Error("Failed to compute slots",
				zap.String("professionalID", professionalID), zap.String("date", date), zap.Error(err))
			c.JSON(status, gin.H{"error": "Failed to compute available slots"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// CreateAppointmentHandler handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.BookingService.CreateAppointment(c.Request.Context(), userID, req)
	if err != nil {
		status := bookingErrorStatus(err)
		if status == http.StatusInternalServerError {
			utils.GetLogger().Error("Failed to create appointment", zap.Error(err))
			c.JSON(status, gin.H{"error": "Failed to create appointment"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// GetAppointmentHandler handles GET /api/appointments/:id. Callers may only
// read their own appointments unless they are admins.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	appt, err := h.BookingService.GetAppointment(c.Param("id"))
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	if !h.canAccessAppointment(c, appt) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListMyAppointmentsHandler handles GET /api/appointments. Clients see their
// bookings; professionals see their calendar.
func (h *AppointmentHandler) ListMyAppointmentsHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appts, err := h.BookingService.ListForUser(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// ListProfessionalAppointmentsHandler handles
// GET /api/appointments/professional/:professionalId.
func (h *AppointmentHandler) ListProfessionalAppointmentsHandler(c *gin.Context) {
	appts, err := h.BookingService.ListForProfessional(c.Param("professionalId"))
	if err != nil {
		utils.GetLogger().Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// UpdateStatusHandler handles PATCH /api/appointments/:id/status.
func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	appt, err := h.BookingService.GetAppointment(c.Param("id"))
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	if !h.canAccessAppointment(c, appt) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.BookingService.UpdateStatus(appt.ID, req.Status)
	if err != nil {
		status := bookingErrorStatus(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetAllAppointmentsHandler handles GET /api/admin/appointments.
func (h *AppointmentHandler) GetAllAppointmentsHandler(c *gin.Context) {
	appts, err := h.BookingService.ListAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// canAccessAppointment reports whether the caller owns either side of the
// appointment or is an admin.
func (h *AppointmentHandler) canAccessAppointment(c *gin.Context, appt *models.Appointment) bool {
	role := c.GetString("role")
	if role == models.RoleAdmin {
		return true
	}
	userID := c.GetString("userID")
	if userID == "" {
		return false
	}
	if appt.UserID == userID {
		return true
	}
	if role == models.RoleProfessional {
		prof, err := h.ProfessionalService.GetProfileByUserID(userID)
		if err == nil && prof.ID == appt.ProfessionalID {
			return true
		}
	}
	return false
}
