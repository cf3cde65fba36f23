package domain

import "time"

// Contact phones split into area code and number
type Contact struct {
	MobileDDD   string
	Mobile      string
	LandlineDDD string
	Landline    string
}

// Address of the customer as shown on the check-in form
type Address struct {
	CEP        string
	Street     string
	Number     string
	Complement string
}

// CheckinForm is the pre-filled check-in surface for one appointment
type CheckinForm struct {
	ID            string
	UserID        string
	AppointmentID string
	CustomerID    string
	PetID         string
	CustomerName  string
	PetName       string
	PetBreed      string
	PetKind       string
	Contact       Contact
	Address       Address
	PreparedAt    time.Time
}

// CheckinRecord is a submitted check-in
type CheckinRecord struct {
	ID            string
	AppointmentID string
	CustomerID    string
	PetID         string
	CustomerName  string
	PetName       string
	Contact       Contact
	Address       Address
	PreBathNotes  string
	Restrictions  string
	Medications   string
	SubmittedBy   string
	SubmittedAt   time.Time
}

// Customer as returned by the backend
type Customer struct {
	ID       string
	Name     string
	Mobile   string
	Landline string
	Address  *CustomerAddress
}

// CustomerAddress is the backend's structured address
type CustomerAddress struct {
	CEP          string
	Street       string
	Neighborhood string
	City         string
	State        string
	Number       string
	Complement   string
}

// Pet as returned by the backend
type Pet struct {
	ID    string
	Name  string
	Breed string
	Kind  string
}
