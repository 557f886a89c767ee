package models

import "time"

// Gender of a registered person
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// PersonInfo holds the personal fields shared by customer representations.
// Embedded by composition; there is exactly one concrete kind of person.
type PersonInfo struct {
	Name           string `db:"name" json:"name"`
	Gender         Gender `db:"gender" json:"gender,omitempty"`
	Identification string `db:"identification" json:"identification"`
	Address        string `db:"address" json:"address"`
	Phone          string `db:"phone" json:"phone"`
}

// Customer is the authoritative customer record owned by the customer service.
type Customer struct {
	PersonInfo
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
	Password  string    `db:"password" json:"-"`
	Status    bool      `db:"status" json:"status"`
	ID        int64     `db:"customer_id" json:"customerId"`
}

// CustomerShadow is the account service's local, eventually-consistent copy
// of an upstream customer. It is written only by the customer-event consumer
// and read for existence checks and statement joins.
type CustomerShadow struct {
	Name           string `db:"name" json:"name"`
	Identification string `db:"identification" json:"identification"`
	Address        string `db:"address" json:"address"`
	Phone          string `db:"phone" json:"phone"`
	Status         bool   `db:"status" json:"status"`
	ID             int64  `db:"customer_id" json:"customerId"`
}
