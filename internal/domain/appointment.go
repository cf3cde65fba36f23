package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Money is an amount in cents
type Money int64

// MoneyFromFloat converts a decimal amount (as sent by the backend) to cents
func MoneyFromFloat(v float64) Money {
	return Money(math.Round(v * 100))
}

// Float returns the decimal amount
func (m Money) Float() float64 {
	return float64(m) / 100
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Float())
}

// ServiceItem is one billable service inside an appointment.
// Professional, hour and status are independent from sibling items.
type ServiceItem struct {
	ItemID         string
	ServiceID      string
	Name           string
	Price          Money
	ProfessionalID string
	Hour           string // HH:MM, empty means the appointment time
	Status         Status
	Observation    string
}

// Appointment is a scheduled grooming visit for one pet
type Appointment struct {
	ID               string
	StoreID          string
	CustomerID       string
	CustomerName     string
	PetID            string
	PetName          string
	ProfessionalID   string // appointment-level default
	ProfessionalName string // legacy free text
	ScheduledAt      time.Time
	Status           Status
	Observations     string
	Paid             bool
	SaleCode         string
	Items            []ServiceItem

	// Legacy single-service representation, used when Items is empty
	LegacyService string
	LegacyValue   Money
}

// ServiceItems returns the items, or one synthetic item built from the legacy fields
func (a *Appointment) ServiceItems() []ServiceItem {
	if len(a.Items) > 0 {
		return a.Items
	}
	return []ServiceItem{{
		Name:           a.LegacyService,
		Price:          a.LegacyValue,
		ProfessionalID: a.ProfessionalID,
		Status:         a.Status,
	}}
}

// ItemIDs returns the non-empty item ids in order
func (a *Appointment) ItemIDs() []string {
	ids := make([]string, 0, len(a.Items))
	for _, it := range a.Items {
		if it.ItemID != "" {
			ids = append(ids, it.ItemID)
		}
	}
	return ids
}

// FindItem looks up an item by id
func (a *Appointment) FindItem(itemID string) (ServiceItem, bool) {
	for _, it := range a.Items {
		if it.ItemID == itemID {
			return it, true
		}
	}
	return ServiceItem{}, false
}

// IsLocked reports whether the appointment was paid or invoiced
func (a *Appointment) IsLocked() bool {
	return a.Paid || strings.TrimSpace(a.SaleCode) != ""
}

// TotalValue sums item prices
func (a *Appointment) TotalValue() Money {
	var total Money
	for _, it := range a.ServiceItems() {
		total += it.Price
	}
	return total
}

// ServiceNames joins item names for display
func (a *Appointment) ServiceNames() string {
	return JoinServiceNames(a.ServiceItems())
}

// EffectiveStatus returns the item status, falling back to the appointment status
func (a *Appointment) EffectiveStatus(it ServiceItem) Status {
	if it.Status == "" {
		return NormalizeStatus(string(a.Status))
	}
	return NormalizeStatus(string(it.Status))
}

// AggregateStatus returns the status to display and the status a quick advance acts on
func (a *Appointment) AggregateStatus() (display Status, action Status) {
	statuses := make([]Status, 0, len(a.Items))
	for _, it := range a.ServiceItems() {
		statuses = append(statuses, a.EffectiveStatus(it))
	}
	return AggregateStatuses(statuses)
}

// AggregateStatuses computes (display, action) for a set of item statuses.
// Display is StatusPartial when they disagree. Action is the plurality,
// ties going to the status seen first.
func AggregateStatuses(statuses []Status) (display Status, action Status) {
	if len(statuses) == 0 {
		return StatusScheduled, StatusScheduled
	}

	counts := make(map[Status]int, len(statuses))
	order := make([]Status, 0, len(statuses))
	for _, s := range statuses {
		if _, seen := counts[s]; !seen {
			order = append(order, s)
		}
		counts[s]++
	}

	action = order[0]
	for _, s := range order[1:] {
		if counts[s] > counts[action] {
			action = s
		}
	}

	if len(order) > 1 {
		return StatusPartial, action
	}
	return action, action
}

// JoinServiceNames concatenates non-empty names
func JoinServiceNames(items []ServiceItem) string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		if n := strings.TrimSpace(it.Name); n != "" {
			names = append(names, n)
		}
	}
	return strings.Join(names, " + ")
}

var namePrepositions = map[string]struct{}{
	"da": {}, "de": {}, "do": {}, "das": {}, "dos": {}, "e": {},
}

// ShortCustomerName abbreviates "maria da silva" to "Maria Sil.."
func ShortCustomerName(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}

	first := capitalize(parts[0])
	for _, w := range parts[1:] {
		if _, prep := namePrepositions[strings.ToLower(w)]; prep {
			continue
		}
		second := []rune(capitalize(w))
		if len(second) > 3 {
			second = second[:3]
		}
		return first + " " + string(second) + ".."
	}
	return first
}

func capitalize(w string) string {
	r := []rune(strings.ToLower(w))
	if len(r) == 0 {
		return ""
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
