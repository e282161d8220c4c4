package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusRejected  AppointmentStatus = "Rejected"
)

// Terminal reports whether no further transition may leave the status.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusRejected
}

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusCompleted, AppointmentStatusRejected:
		return true
	}
	return false
}

type PriorityLevel string

const (
	PriorityUrgent PriorityLevel = "Urgent"
	PriorityHigh   PriorityLevel = "High"
	PriorityMedium PriorityLevel = "Medium"
	PriorityLow    PriorityLevel = "Low"
)

func (p PriorityLevel) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank orders priorities for the today view, Urgent first.
func (p PriorityLevel) Rank() int {
	switch p {
	case PriorityUrgent:
		return 1
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 3
	case PriorityLow:
		return 4
	}
	return 5
}

// Appointment is one scheduled diagnostic visit. LaboratoryID is set only
// when the appointment was created by a registered laboratory account;
// LaboratoryName is always present (free text when the admin books against
// an unregistered lab). TrackingID is write-once, guarded at the store.
type Appointment struct {
	ID                  primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	PatientName         string              `bson:"patientName" json:"patientName"`
	Email               string              `bson:"email" json:"email"`
	ContactNumber       string              `bson:"contactNumber" json:"contactNumber"`
	Address             string              `bson:"address,omitempty" json:"address,omitempty"`
	DateOfBirth         *time.Time          `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Gender              string              `bson:"gender,omitempty" json:"gender,omitempty"`
	Age                 int                 `bson:"age,omitempty" json:"age,omitempty"`
	CreatedBy           Role                `bson:"createdBy" json:"createdBy"`
	LaboratoryName      string              `bson:"laboratoryName" json:"laboratoryName"`
	LaboratoryID        *primitive.ObjectID `bson:"laboratoryId,omitempty" json:"laboratoryId,omitempty"`
	EmployeeID          *primitive.ObjectID `bson:"employeeId,omitempty" json:"employeeId,omitempty"`
	PriorityLevel       PriorityLevel       `bson:"priorityLevel" json:"priorityLevel"`
	AppointmentDateTime time.Time           `bson:"appointmentDateTime" json:"appointmentDateTime"`
	Status              AppointmentStatus   `bson:"status" json:"status"`
	Fees                float64             `bson:"fees" json:"fees"`
	AccountNumber       string              `bson:"accountNumber,omitempty" json:"accountNumber,omitempty"`
	IsPaid              bool                `bson:"isPaid" json:"isPaid"`
	TrackingID          *string             `bson:"trackingId" json:"trackingId"`
	Documents           []string            `bson:"documents,omitempty" json:"documents,omitempty"`
	SpecialInstructions string              `bson:"specialInstructions,omitempty" json:"specialInstructions,omitempty"`
	CreatedAt           time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time           `bson:"updatedAt" json:"updatedAt"`

	// Populated for notification text on reads, never stored.
	Employee   *Employee   `bson:"-" json:"employee,omitempty"`
	Laboratory *Laboratory `bson:"-" json:"laboratory,omitempty"`
}

func (a *Appointment) Assigned() bool {
	return a.EmployeeID != nil
}

func (a *Appointment) AssignedTo(employeeID primitive.ObjectID) bool {
	return a.EmployeeID != nil && *a.EmployeeID == employeeID
}
