package backend

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

// AppointmentDTO is the appointment as returned by /func/agendamentos
type AppointmentDTO struct {
	ID             string           `json:"_id"`
	StoreID        string           `json:"storeId"`
	ClienteID      string           `json:"clienteId"`
	ClienteNome    string           `json:"clienteNome"`
	Tutor          string           `json:"tutor"`
	TutorNome      string           `json:"tutorNome"`
	Cliente        *CustomerRefDTO  `json:"cliente,omitempty"`
	Pet            string           `json:"pet"`
	PetID          string           `json:"petId"`
	Servico        string           `json:"servico"`
	Servicos       []ServiceItemDTO `json:"servicos"`
	ProfissionalID string           `json:"profissionalId"`
	Profissional   string           `json:"profissional"`
	H              *time.Time       `json:"h,omitempty"`
	ScheduledAt    *time.Time       `json:"scheduledAt,omitempty"`
	Valor          float64          `json:"valor"`
	Pago           bool             `json:"pago"`
	CodigoVenda    string           `json:"codigoVenda"`
	Observacoes    string           `json:"observacoes"`
	Status         string           `json:"status"`
}

// CustomerRefDTO legacy embedded customer
type CustomerRefDTO struct {
	ID           string `json:"_id"`
	Nome         string `json:"nome"`
	NomeCompleto string `json:"nomeCompleto"`
}

// ServiceItemDTO one entry of servicos[]
type ServiceItemDTO struct {
	ItemID         string  `json:"itemId"`
	ID             string  `json:"_id"`
	ServicoID      string  `json:"servicoId"`
	Nome           string  `json:"nome"`
	Valor          float64 `json:"valor"`
	ProfissionalID string  `json:"profissionalId"`
	Hora           string  `json:"hora"`
	Status         string  `json:"status"`
	Observacao     string  `json:"observacao"`
}

// ToDomain converts the wire appointment. Legacy records without servicos keep
// the scalar servico/valor fields.
func (a *AppointmentDTO) ToDomain() domain.Appointment {
	appt := domain.Appointment{
		ID:               a.ID,
		StoreID:          a.StoreID,
		CustomerID:       a.ClienteID,
		CustomerName:     a.customerName(),
		PetID:            a.PetID,
		PetName:          a.Pet,
		ProfessionalID:   strings.TrimSpace(a.ProfissionalID),
		ProfessionalName: strings.TrimSpace(a.Profissional),
		Status:           domain.NormalizeStatus(a.Status),
		Observations:     a.Observacoes,
		Paid:             a.Pago,
		SaleCode:         strings.TrimSpace(a.CodigoVenda),
	}

	switch {
	case a.H != nil:
		appt.ScheduledAt = *a.H
	case a.ScheduledAt != nil:
		appt.ScheduledAt = *a.ScheduledAt
	}

	if appt.CustomerID == "" && a.Cliente != nil {
		appt.CustomerID = a.Cliente.ID
	}

	if len(a.Servicos) == 0 {
		appt.LegacyService = a.Servico
		appt.LegacyValue = domain.MoneyFromFloat(a.Valor)
		return appt
	}

	appt.Items = make([]domain.ServiceItem, 0, len(a.Servicos))
	for _, s := range a.Servicos {
		item := domain.ServiceItem{
			ItemID:         s.ItemID,
			ServiceID:      firstNonEmpty(s.ServicoID, s.ID),
			Name:           s.Nome,
			Price:          domain.MoneyFromFloat(s.Valor),
			ProfessionalID: strings.TrimSpace(s.ProfissionalID),
			Hour:           strings.TrimSpace(s.Hora),
			Observation:    s.Observacao,
		}
		if s.Status != "" {
			item.Status = domain.NormalizeStatus(s.Status)
		}
		appt.Items = append(appt.Items, item)
	}
	return appt
}

func (a *AppointmentDTO) customerName() string {
	candidates := []string{a.ClienteNome, a.Tutor, a.TutorNome}
	if a.Cliente != nil {
		candidates = append(candidates, a.Cliente.NomeCompleto, a.Cliente.Nome)
	}
	return firstNonEmpty(candidates...)
}

// StoreDTO is the store as returned by /stores
type StoreDTO struct {
	ID      string                 `json:"_id"`
	Nome    string                 `json:"nome"`
	Horario map[string]DayHoursDTO `json:"horario"`
}

// DayHoursDTO one weekday of horario
type DayHoursDTO struct {
	Abre    string `json:"abre"`
	Fecha   string `json:"fecha"`
	Fechada bool   `json:"fechada"`
}

func (s *StoreDTO) ToDomain() domain.Store {
	store := domain.Store{
		ID:            s.ID,
		Name:          s.Nome,
		BusinessHours: make(map[time.Weekday]domain.DayHours, len(s.Horario)),
	}
	for key, h := range s.Horario {
		wd, ok := domain.WeekdayFromKey(key)
		if !ok {
			continue
		}
		store.BusinessHours[wd] = domain.DayHours{
			Open:   strings.TrimSpace(h.Abre),
			Close:  strings.TrimSpace(h.Fecha),
			Closed: h.Fechada,
		}
	}
	return store
}

// ProfessionalDTO is the professional as returned by /func/profissionais
type ProfessionalDTO struct {
	ID   string `json:"_id"`
	Nome string `json:"nome"`
	Tipo string `json:"tipo"`
}

func (p *ProfessionalDTO) ToDomain(storeID string) domain.Professional {
	return domain.Professional{
		ID:      p.ID,
		Name:    strings.TrimSpace(p.Nome),
		Kind:    domain.NormalizeKind(p.Tipo),
		StoreID: storeID,
	}
}

// CustomerDTO is /func/clientes/{id}
type CustomerDTO struct {
	ID       string              `json:"_id"`
	Nome     string              `json:"nome"`
	Celular  string              `json:"celular"`
	Cel      string              `json:"cel"`
	Telefone string              `json:"telefone"`
	Address  *CustomerAddressDTO `json:"address,omitempty"`
}

// CustomerAddressDTO embedded address
type CustomerAddressDTO struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	UF          string `json:"uf"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
}

func (c *CustomerDTO) ToDomain() domain.Customer {
	customer := domain.Customer{
		ID:       c.ID,
		Name:     c.Nome,
		Mobile:   firstNonEmpty(c.Celular, c.Cel, c.Telefone),
		Landline: c.Telefone,
	}
	if c.Address != nil {
		customer.Address = &domain.CustomerAddress{
			CEP:          c.Address.CEP,
			Street:       c.Address.Logradouro,
			Neighborhood: c.Address.Bairro,
			City:         c.Address.Cidade,
			State:        c.Address.UF,
			Number:       c.Address.Numero,
			Complement:   c.Address.Complemento,
		}
	}
	return customer
}

// PetDTO one entry of /func/clientes/{id}/pets
type PetDTO struct {
	ID    string `json:"_id"`
	AltID string `json:"id"`
	Nome  string `json:"nome"`
	Raca  string `json:"raca"`
	Tipo  string `json:"tipo"`
}

func (p *PetDTO) ToDomain() domain.Pet {
	return domain.Pet{
		ID:    firstNonEmpty(p.ID, p.AltID),
		Name:  p.Nome,
		Breed: p.Raca,
		Kind:  strings.TrimSpace(p.Tipo),
	}
}

// AppointmentPayload is the body of POST and PUT /func/agendamentos.
// Only real professional ids ever reach ProfissionalID fields, see ProfessionalID.
type AppointmentPayload struct {
	StoreID        string               `json:"storeId,omitempty"`
	ClienteID      string               `json:"clienteId,omitempty"`
	PetID          string               `json:"petId,omitempty"`
	Servicos       []ServiceItemPayload `json:"servicos,omitempty"`
	ProfissionalID *string              `json:"profissionalId,omitempty"`
	ScheduledAt    *time.Time           `json:"scheduledAt,omitempty"`
	Status         string               `json:"status,omitempty"`
	Observacoes    *string              `json:"observacoes,omitempty"`
	Pago           *bool                `json:"pago,omitempty"`

	// Partial move: retarget only these items
	ServiceItemIDs        []string   `json:"serviceItemIds,omitempty"`
	ServiceHour           string     `json:"serviceHour,omitempty"`
	ServiceScheduledAt    *time.Time `json:"serviceScheduledAt,omitempty"`
	ServiceProfissionalID string     `json:"serviceProfissionalId,omitempty"`
}

// ServiceItemPayload one entry of servicos[] on write
type ServiceItemPayload struct {
	ItemID         string  `json:"itemId,omitempty"`
	ServicoID      string  `json:"servicoId"`
	Valor          float64 `json:"valor"`
	Status         string  `json:"status,omitempty"`
	ProfissionalID string  `json:"profissionalId,omitempty"`
	Hora           string  `json:"hora,omitempty"`
	Observacao     string  `json:"observacao,omitempty"`
}

// ItemPayloadFromDomain converts a service item for a write
func ItemPayloadFromDomain(it domain.ServiceItem) ServiceItemPayload {
	p := ServiceItemPayload{
		ItemID:         it.ItemID,
		ServicoID:      it.ServiceID,
		Valor:          it.Price.Float(),
		ProfissionalID: it.ProfessionalID,
		Hora:           it.Hour,
		Observacao:     it.Observation,
	}
	if it.Status.IsSettable() {
		p.Status = string(it.Status)
	}
	return p
}

// ProfessionalID returns the wire id of ref, nil for no preference
func ProfessionalID(ref domain.ProfessionalRef) *string {
	id, ok := ref.ID()
	if !ok {
		return nil
	}
	return &id
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type deleteResponse struct {
	OK bool `json:"ok"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
