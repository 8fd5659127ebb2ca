package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/odualeSamsonSolomon/JoTech/errors"
	"github.com/odualeSamsonSolomon/JoTech/models"
	"github.com/odualeSamsonSolomon/JoTech/services"
)

// EngagementController serves the newsletter and appointment forms.
type EngagementController struct {
	newsletter   *services.NewsletterService
	appointments *services.AppointmentService
}

func NewEngagementController(newsletter *services.NewsletterService, appointments *services.AppointmentService) *EngagementController {
	return &EngagementController{
		newsletter:   newsletter,
		appointments: appointments,
	}
}

type newsletterRequest struct {
	Email string `json:"email"`
}

func (ec *EngagementController) Subscribe(c *gin.Context) {
	var req newsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.New(http.StatusBadRequest, "Invalid payload", err))
		return
	}

	if err := ec.newsletter.Subscribe(c.Request.Context(), req.Email); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Thank you for subscribing!"})
}

type appointmentRequest struct {
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone"`
	Service string    `json:"service"`
	Date    time.Time `json:"date"`
}

func (ec *EngagementController) BookAppointment(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.New(http.StatusBadRequest, "Invalid payload", err))
		return
	}

	appointment := &models.Appointment{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Date:    req.Date,
	}
	if err := ec.appointments.Book(c.Request.Context(), appointment); err != nil {
		c.Error(err)
		return
	}

	zap.L().Info("appointments: booked",
		zap.String("service", appointment.Service),
		zap.Time("date", appointment.Date),
	)
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Your appointment has been booked! We will confirm shortly."})
}
