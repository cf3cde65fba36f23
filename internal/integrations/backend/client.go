package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-GroomingAgenda/internal/actorctx"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client is the REST client of the store backend.
// The bearer token is taken from the request context (actorctx) and attached as is.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a backend client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListAppointments GET /func/agendamentos?date&storeId
func (c *Client) ListAppointments(ctx context.Context, storeID string, date time.Time) ([]domain.Appointment, error) {
	q := url.Values{}
	q.Set("date", date.Format(domain.DateFormat))
	q.Set("storeId", storeID)

	var dtos []AppointmentDTO
	if err := c.do(ctx, http.MethodGet, "/func/agendamentos", q, nil, &dtos); err != nil {
		return nil, err
	}
	return appointmentsToDomain(dtos), nil
}

// ListAppointmentsRange GET /func/agendamentos/range?start&end&storeId, end exclusive
func (c *Client) ListAppointmentsRange(ctx context.Context, storeID string, start, end time.Time) ([]domain.Appointment, error) {
	q := url.Values{}
	q.Set("start", start.Format(domain.DateFormat))
	q.Set("end", end.Format(domain.DateFormat))
	q.Set("storeId", storeID)

	var dtos []AppointmentDTO
	if err := c.do(ctx, http.MethodGet, "/func/agendamentos/range", q, nil, &dtos); err != nil {
		return nil, err
	}
	return appointmentsToDomain(dtos), nil
}

// CreateAppointment POST /func/agendamentos
func (c *Client) CreateAppointment(ctx context.Context, payload *AppointmentPayload) (*domain.Appointment, error) {
	var dto AppointmentDTO
	if err := c.do(ctx, http.MethodPost, "/func/agendamentos", nil, payload, &dto); err != nil {
		return nil, err
	}
	appt := dto.ToDomain()
	return &appt, nil
}

// UpdateAppointment PUT /func/agendamentos/{id}
func (c *Client) UpdateAppointment(ctx context.Context, id string, payload *AppointmentPayload) error {
	return c.do(ctx, http.MethodPut, "/func/agendamentos/"+url.PathEscape(id), nil, payload, nil)
}

// DeleteAppointment DELETE /func/agendamentos/{id}
func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	var resp deleteResponse
	return c.do(ctx, http.MethodDelete, "/func/agendamentos/"+url.PathEscape(id), nil, nil, &resp)
}

// ListProfessionals GET /func/profissionais?storeId
func (c *Client) ListProfessionals(ctx context.Context, storeID string) ([]domain.Professional, error) {
	q := url.Values{}
	q.Set("storeId", storeID)

	var dtos []ProfessionalDTO
	if err := c.do(ctx, http.MethodGet, "/func/profissionais", q, nil, &dtos); err != nil {
		return nil, err
	}

	professionals := make([]domain.Professional, 0, len(dtos))
	for i := range dtos {
		if strings.TrimSpace(dtos[i].ID) == "" {
			continue
		}
		professionals = append(professionals, dtos[i].ToDomain(storeID))
	}
	return professionals, nil
}

// ListStores GET /stores
func (c *Client) ListStores(ctx context.Context) ([]domain.Store, error) {
	var dtos []StoreDTO
	if err := c.do(ctx, http.MethodGet, "/stores", nil, nil, &dtos); err != nil {
		return nil, err
	}

	stores := make([]domain.Store, 0, len(dtos))
	for i := range dtos {
		stores = append(stores, dtos[i].ToDomain())
	}
	return stores, nil
}

// GetCustomer GET /func/clientes/{id}
func (c *Client) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	var dto CustomerDTO
	if err := c.do(ctx, http.MethodGet, "/func/clientes/"+url.PathEscape(customerID), nil, nil, &dto); err != nil {
		return nil, err
	}
	customer := dto.ToDomain()
	return &customer, nil
}

// ListCustomerPets GET /func/clientes/{id}/pets
func (c *Client) ListCustomerPets(ctx context.Context, customerID string) ([]domain.Pet, error) {
	var dtos []PetDTO
	if err := c.do(ctx, http.MethodGet, "/func/clientes/"+url.PathEscape(customerID)+"/pets", nil, nil, &dtos); err != nil {
		return nil, err
	}

	pets := make([]domain.Pet, 0, len(dtos))
	for i := range dtos {
		pets = append(pets, dtos[i].ToDomain())
	}
	return pets, nil
}

// GetCustomerWithGracefulDegradation returns nil instead of failing so the check-in form
// can still open with blank contact fields
func (c *Client) GetCustomerWithGracefulDegradation(ctx context.Context, customerID string) *domain.Customer {
	if customerID == "" {
		return nil
	}
	customer, err := c.GetCustomer(ctx, customerID)
	if err != nil {
		c.log.Warn("Backend: customer %s unavailable, check-in opens without contact data: %v", customerID, err)
		return nil
	}
	return customer
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode body: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := actorctx.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request %s %s: %v", ErrInternal, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respErr := newResponseError(resp)
		if resp.StatusCode >= 500 {
			c.log.Error("Backend: %s %s failed: %v", method, path, respErr)
		} else {
			c.log.Warn("Backend: %s %s rejected: %v", method, path, respErr)
		}
		return respErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("%w: failed to decode response of %s %s: %v", ErrInvalidResponse, method, path, err)
	}
	return nil
}

func newResponseError(resp *http.Response) *ResponseError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	message := ""
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		message = firstNonEmpty(eb.Message, eb.Error)
	}

	var kind error
	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		kind = ErrBadRequest
	case resp.StatusCode == http.StatusUnauthorized:
		kind = ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		kind = ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		kind = ErrNotFound
	case resp.StatusCode >= 500:
		kind = ErrUnavailable
	default:
		kind = ErrUnexpectedStatus
	}

	return &ResponseError{
		StatusCode: resp.StatusCode,
		Message:    message,
		Kind:       kind,
	}
}

func appointmentsToDomain(dtos []AppointmentDTO) []domain.Appointment {
	appts := make([]domain.Appointment, 0, len(dtos))
	for i := range dtos {
		appts = append(appts, dtos[i].ToDomain())
	}
	return appts
}
