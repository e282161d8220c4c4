package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleEmployee   Role = "employee"
	RoleLaboratory Role = "laboratory"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleLaboratory:
		return true
	}
	return false
}

// Actor is the role-tagged directory handle the lifecycle operations carry:
// everything the core ever reads from a directory record, resolved once.
type Actor struct {
	ID             primitive.ObjectID
	Role           Role
	FullName       string
	Email          string
	DeviceToken    string
	IsNotification bool
}

// Employee is a field phlebotomist. The core reads identity, email and
// push fields; it never writes employee records.
type Employee struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName       string             `bson:"fullName" json:"fullName"`
	Email          string             `bson:"email" json:"email"`
	ContactNumber  string             `bson:"contactNumber" json:"contactNumber"`
	EmployeeCode   string             `bson:"employeeCode" json:"employeeCode"`
	JobRole        string             `bson:"jobRole" json:"jobRole"`
	ShiftTiming    string             `bson:"shiftTiming,omitempty" json:"shiftTiming,omitempty"`
	HireDate       time.Time          `bson:"hireDate" json:"hireDate"`
	DeviceToken    string             `bson:"deviceToken,omitempty" json:"-"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	IsNotification bool               `bson:"isNotification" json:"isNotification"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (e *Employee) Actor() *Actor {
	return &Actor{
		ID:             e.ID,
		Role:           RoleEmployee,
		FullName:       e.FullName,
		Email:          e.Email,
		DeviceToken:    e.DeviceToken,
		IsNotification: e.IsNotification,
	}
}

type Laboratory struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName       string             `bson:"fullName" json:"fullName"`
	Email          string             `bson:"email" json:"email"`
	Address        string             `bson:"address" json:"address"`
	ContactNumber  string             `bson:"contactNumber" json:"contactNumber"`
	About          string             `bson:"about,omitempty" json:"about,omitempty"`
	DeviceToken    string             `bson:"deviceToken,omitempty" json:"-"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	IsNotification bool               `bson:"isNotification" json:"isNotification"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (l *Laboratory) Actor() *Actor {
	return &Actor{
		ID:             l.ID,
		Role:           RoleLaboratory,
		FullName:       l.FullName,
		Email:          l.Email,
		DeviceToken:    l.DeviceToken,
		IsNotification: l.IsNotification,
	}
}

// Administrator is the single operations admin account.
type Administrator struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName       string             `bson:"fullName" json:"fullName"`
	Email          string             `bson:"email" json:"email"`
	ContactNumber  string             `bson:"contactNumber" json:"contactNumber"`
	DeviceToken    string             `bson:"deviceToken,omitempty" json:"-"`
	IsNotification bool               `bson:"isNotification" json:"isNotification"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (a *Administrator) Actor() *Actor {
	return &Actor{
		ID:             a.ID,
		Role:           RoleAdmin,
		FullName:       a.FullName,
		Email:          a.Email,
		DeviceToken:    a.DeviceToken,
		IsNotification: a.IsNotification,
	}
}
