package grid

import (
	"sort"
	"strconv"
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/internal/service/resolve"
)

// ItemDetail is one service inside a card
type ItemDetail struct {
	ItemID string        `json:"itemId,omitempty"`
	Name   string        `json:"name"`
	Status domain.Status `json:"status"`
	Price  domain.Money  `json:"price"`
}

// Card is the unit placed in the grid: the items of one appointment that share
// a professional and a time
type Card struct {
	Key              string        `json:"key"`
	AppointmentID    string        `json:"appointmentId"`
	ItemIDs          []string      `json:"itemIds"`
	Items            []ItemDetail  `json:"items"`
	Column           string        `json:"column"`
	ProfessionalName string        `json:"professionalName"`
	Start            time.Time     `json:"start"`
	Hour             string        `json:"hour"`
	Value            domain.Money  `json:"value"`
	Services         string        `json:"services"`
	Status           domain.Status `json:"status"`
	ActionStatus     domain.Status `json:"actionStatus"`
	StatusLabel      string        `json:"statusLabel"`
	Stripe           string        `json:"stripe"`
	Locked           bool          `json:"locked"`
	Whole            bool          `json:"whole"`
	Customer         string        `json:"customer"`
	Pet              string        `json:"pet"`

	ref domain.ProfessionalRef
}

// Ref returns the resolved professional of the card
func (c Card) Ref() domain.ProfessionalRef {
	return c.ref
}

type group struct {
	ref      domain.ProfessionalRef
	start    time.Time
	items    []domain.ServiceItem
	statuses []domain.Status
}

// Expand turns an appointment into cards, one per (professional, time) group.
// Zero or one item always gives exactly one card.
func Expand(a *domain.Appointment, chain *resolve.Chain) []Card {
	groups := make([]*group, 0, 1)
	index := make(map[string]*group)

	for _, it := range a.ServiceItems() {
		ref := chain.Resolve(a, it)
		start := chain.Time(a, it)
		key := ref.Key() + "|" + strconv.FormatInt(start.Unix(), 10)

		g, ok := index[key]
		if !ok {
			g = &group{ref: ref, start: start}
			index[key] = g
			groups = append(groups, g)
		}
		g.items = append(g.items, it)
		g.statuses = append(g.statuses, a.EffectiveStatus(it))
	}

	loc := chain.Location()
	customer := domain.ShortCustomerName(a.CustomerName)
	locked := a.IsLocked()

	cards := make([]Card, 0, len(groups))
	for _, g := range groups {
		display, action := domain.AggregateStatuses(g.statuses)
		meta := display.Meta()

		card := Card{
			Key:              a.ID + "|" + g.ref.Key() + "|" + strconv.FormatInt(g.start.Unix(), 10),
			AppointmentID:    a.ID,
			ItemIDs:          make([]string, 0, len(g.items)),
			Items:            make([]ItemDetail, 0, len(g.items)),
			Column:           g.ref.Key(),
			ProfessionalName: professionalName(chain, g.ref),
			Start:            g.start.In(loc),
			Hour:             g.start.In(loc).Format(domain.TimeFormat),
			Services:         domain.JoinServiceNames(g.items),
			Status:           display,
			ActionStatus:     action,
			StatusLabel:      meta.Label,
			Stripe:           meta.Stripe,
			Locked:           locked,
			Whole:            len(groups) == 1,
			Customer:         customer,
			Pet:              a.PetName,
			ref:              g.ref,
		}
		for i, it := range g.items {
			if it.ItemID != "" {
				card.ItemIDs = append(card.ItemIDs, it.ItemID)
			}
			card.Items = append(card.Items, ItemDetail{
				ItemID: it.ItemID,
				Name:   it.Name,
				Status: g.statuses[i],
				Price:  it.Price,
			})
			card.Value += it.Price
		}
		cards = append(cards, card)
	}
	return cards
}

// ExpandAll expands every appointment and sorts cards by time
func ExpandAll(appointments []domain.Appointment, chain *resolve.Chain) []Card {
	cards := make([]Card, 0, len(appointments))
	for i := range appointments {
		cards = append(cards, Expand(&appointments[i], chain)...)
	}
	sortCards(cards)
	return cards
}

func sortCards(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		if !cards[i].Start.Equal(cards[j].Start) {
			return cards[i].Start.Before(cards[j].Start)
		}
		return cards[i].AppointmentID < cards[j].AppointmentID
	})
}

func professionalName(chain *resolve.Chain, ref domain.ProfessionalRef) string {
	id, ok := ref.ID()
	if !ok {
		return domain.NoPreferenceName
	}
	if p, found := chain.Professional(id); found {
		return p.Name
	}
	return ""
}
