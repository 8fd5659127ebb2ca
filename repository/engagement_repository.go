package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/odualeSamsonSolomon/JoTech/models"
)

// NewsletterRepository persists newsletter signups, one document per email.
type NewsletterRepository interface {
	Subscribe(ctx context.Context, signup *models.NewsletterSignup) error
}

type mongoNewsletterRepository struct {
	collection *mongo.Collection
}

func NewNewsletterRepository(db *mongo.Database) NewsletterRepository {
	return &mongoNewsletterRepository{collection: db.Collection("newsletter")}
}

// Subscribe upserts by email so repeated signups stay idempotent and keep the
// original subscription time.
func (r *mongoNewsletterRepository) Subscribe(ctx context.Context, signup *models.NewsletterSignup) error {
	if signup.SubscribedAt.IsZero() {
		signup.SubscribedAt = time.Now().UTC()
	}
	filter := bson.M{"email": signup.Email}
	update := bson.M{"$setOnInsert": bson.M{
		"email":         signup.Email,
		"subscribed_at": signup.SubscribedAt,
	}}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// AppointmentRepository persists service bookings.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
}

type mongoAppointmentRepository struct {
	collection *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) AppointmentRepository {
	return &mongoAppointmentRepository{collection: db.Collection("appointments")}
}

func (r *mongoAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now().UTC()
	}
	if appointment.Status == "" {
		appointment.Status = models.AppointmentStatusPending
	}
	_, err := r.collection.InsertOne(ctx, appointment)
	return err
}
