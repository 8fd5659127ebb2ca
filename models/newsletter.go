package models

import "time"

// NewsletterSignup records a subscribed email address, unique per email.
type NewsletterSignup struct {
	ID           string    `json:"_id,omitempty" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	SubscribedAt time.Time `json:"subscribed_at" bson:"subscribed_at"`
}
