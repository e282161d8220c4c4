package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "Pending"
	TransactionStatusCompleted TransactionStatus = "Completed"
	TransactionStatusDenied    TransactionStatus = "Denied"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusDenied:
		return true
	}
	return false
}

// Transaction is the one-to-one billing companion of an Appointment,
// created in the same logical operation and never re-created. Its status
// moves independently of the appointment's.
type Transaction struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	AppointmentID primitive.ObjectID  `bson:"appointmentId" json:"appointmentId"`
	LaboratoryID  *primitive.ObjectID `bson:"laboratoryId,omitempty" json:"laboratoryId,omitempty"`
	AccountNumber string              `bson:"accountNumber,omitempty" json:"accountNumber,omitempty"`
	PatientName   string              `bson:"patientName" json:"patientName"`
	DateAndTime   time.Time           `bson:"dateAndTime" json:"dateAndTime"`
	Amount        float64             `bson:"amount" json:"amount"`
	Status        TransactionStatus   `bson:"status" json:"status"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// CapitalizeName normalizes a patient name to Title Case the way the
// transaction record stores it.
func CapitalizeName(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
