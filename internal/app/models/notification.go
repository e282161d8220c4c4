package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationType string

const (
	NotificationTypeAppointment NotificationType = "appointment"
	NotificationTypeSystem      NotificationType = "system"
	NotificationTypeReminder    NotificationType = "reminder"
	NotificationTypeAlert       NotificationType = "alert"
)

// Notification is the durable record of one fan-out delivery to one
// directory-backed recipient. Immutable once written except for IsRead.
type Notification struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	ReceiverID   primitive.ObjectID  `bson:"receiverId" json:"receiverId"`
	ReceiverRole Role                `bson:"receiverRole" json:"receiverRole"`
	AdminID      *primitive.ObjectID `bson:"adminId,omitempty" json:"adminId,omitempty"`
	Type         NotificationType    `bson:"type" json:"type"`
	Title        string              `bson:"title" json:"title"`
	Body         string              `bson:"body" json:"body"`
	IsRead       bool                `bson:"isRead" json:"isRead"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
}
