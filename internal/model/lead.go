package model

import "time"

// Lead is a contact-via-WhatsApp request captured from the site
type Lead struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Phone        string    `json:"phone" bson:"phone"`
	MajorSlug    string    `json:"majorSlug,omitempty" bson:"majorSlug,omitempty"`
	SessionID    string    `json:"sessionId,omitempty" bson:"sessionId,omitempty"`
	WhatsAppLink string    `json:"whatsappLink" bson:"whatsappLink"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}
