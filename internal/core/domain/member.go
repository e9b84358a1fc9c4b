package domain

import (
	"errors"
	"time"
)

// MemberStatus represents the approval state of a membership application.
type MemberStatus string

const (
	StatusPending  MemberStatus = "pending"
	StatusApproved MemberStatus = "approved"
	StatusRejected MemberStatus = "rejected"
)

// ShirtSizes is the fixed set of shirt sizes offered on the registration form.
var ShirtSizes = []string{"XS", "S", "M", "L", "XL", "XXL", "XXXL"}

var ErrMemberNotFound = errors.New("member not found")
var ErrInvalidStatus = errors.New("invalid member status")

// IsValid reports whether s is one of the known member statuses.
func (s MemberStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from s to next is allowed.
// Any state may move to any other state: operators correct mistakes by
// resetting approved or rejected applications back to pending. There is no
// terminal state.
func (s MemberStatus) CanTransitionTo(next MemberStatus) bool {
	return s.IsValid() && next.IsValid()
}

// Member is a membership application submitted through the registration
// form. Status starts at pending regardless of caller input and CreatedAt is
// immutable once set.
type Member struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	Email       string       `json:"email" bson:"email"`
	FullName    string       `json:"fullName" bson:"full_name"`
	Nickname    string       `json:"nickname" bson:"nickname"`
	BirthDate   string       `json:"birthDate" bson:"birth_date"`
	BirthPlace  string       `json:"birthPlace" bson:"birth_place"`
	Address     string       `json:"address" bson:"address"`
	Phone       string       `json:"phone" bson:"phone"`
	CarType     string       `json:"carType" bson:"car_type"`
	CarYear     string       `json:"carYear" bson:"car_year"`
	CarColor    string       `json:"carColor" bson:"car_color"`
	PlateNumber string       `json:"plateNumber" bson:"plate_number"`
	ShirtSize   string       `json:"shirtSize" bson:"shirt_size"`
	Reason      string       `json:"reason" bson:"reason"`
	Status      MemberStatus `json:"status" bson:"status"`
	CreatedAt   time.Time    `json:"createdAt" bson:"created_at"`
}
