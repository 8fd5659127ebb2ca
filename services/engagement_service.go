package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/odualeSamsonSolomon/JoTech/errors"
	"github.com/odualeSamsonSolomon/JoTech/models"
	"github.com/odualeSamsonSolomon/JoTech/repository"
)

// NewsletterService handles newsletter signups.
type NewsletterService struct {
	repo repository.NewsletterRepository
}

func NewNewsletterService(repo repository.NewsletterRepository) *NewsletterService {
	return &NewsletterService{repo: repo}
}

func (s *NewsletterService) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return apperrors.New(http.StatusBadRequest, "A valid email address is required", nil)
	}
	return s.repo.Subscribe(ctx, &models.NewsletterSignup{Email: email})
}

// AppointmentService handles service bookings.
type AppointmentService struct {
	repo repository.AppointmentRepository
}

func NewAppointmentService(repo repository.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repo: repo}
}

func (s *AppointmentService) Book(ctx context.Context, appointment *models.Appointment) error {
	for _, field := range []string{appointment.Name, appointment.Email, appointment.Phone, appointment.Service} {
		if strings.TrimSpace(field) == "" {
			return apperrors.New(http.StatusBadRequest, "Name, email, phone and service are required", nil)
		}
	}
	if appointment.Date.IsZero() || appointment.Date.Before(time.Now()) {
		return apperrors.New(http.StatusBadRequest, "Appointment date must be in the future", nil)
	}
	appointment.Status = models.AppointmentStatusPending
	return s.repo.Create(ctx, appointment)
}
