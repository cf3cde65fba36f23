package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingAgenda/internal/actorctx"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
	"github.com/m04kA/SMC-GroomingAgenda/pkg/logger"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 2*time.Second, logger.Nop{})
}

func withToken(token string) context.Context {
	return actorctx.WithActor(context.Background(), domain.Actor{UserID: "u1", Token: token})
}

func TestListAppointmentsAttachesTokenAndDecodes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/func/agendamentos", r.URL.Path)
		assert.Equal(t, "2025-03-03", r.URL.Query().Get("date"))
		assert.Equal(t, "s1", r.URL.Query().Get("storeId"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`[
			{"_id":"a1","storeId":"s1","clienteNome":"","tutor":"Maria da Silva","pet":"Rex",
			 "h":"2025-03-03T12:00:00Z","status":"Em espera","profissionalId":"p1",
			 "servicos":[
			   {"itemId":"i1","_id":"sv1","nome":"Banho","valor":40.5,"profissionalId":"p1","status":"em_espera"},
			   {"itemId":"i2","_id":"sv2","nome":"Tosa","valor":30,"hora":"10:00"}
			 ]},
			{"_id":"a2","storeId":"s1","clienteNome":"Ana","servico":"Banho","valor":50,"pago":true,
			 "scheduledAt":"2025-03-03T13:00:00Z","status":"finalizado"}
		]`))
	})

	appts, err := client.ListAppointments(withToken("tok"), "s1", time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, appts, 2)

	a1 := appts[0]
	assert.Equal(t, "Maria da Silva", a1.CustomerName)
	assert.Equal(t, domain.StatusWaiting, a1.Status)
	assert.Equal(t, time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC), a1.ScheduledAt.UTC())
	require.Len(t, a1.Items, 2)
	assert.Equal(t, domain.Money(4050), a1.Items[0].Price)
	assert.Equal(t, "sv2", a1.Items[1].ServiceID)
	assert.Equal(t, "10:00", a1.Items[1].Hour)
	assert.Equal(t, domain.Status(""), a1.Items[1].Status)

	a2 := appts[1]
	assert.Empty(t, a2.Items)
	assert.Equal(t, "Banho", a2.LegacyService)
	assert.Equal(t, domain.Money(5000), a2.TotalValue())
	assert.True(t, a2.IsLocked())
}

func TestUpdateAppointmentSendsPartialPayload(t *testing.T) {
	var got map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/func/agendamentos/a1", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	})

	at := time.Date(2025, 3, 3, 14, 0, 0, 0, time.UTC)
	err := client.UpdateAppointment(withToken("tok"), "a1", &AppointmentPayload{
		StoreID:            "s1",
		ServiceItemIDs:     []string{"i1", "i2"},
		ServiceHour:        "14:00",
		ServiceScheduledAt: &at,
		ProfissionalID:     ProfessionalID(domain.NoPreference()),
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []interface{}{"i1", "i2"}, got["serviceItemIds"])
	assert.Equal(t, "14:00", got["serviceHour"])
	assert.NotContains(t, got, "scheduledAt")
	assert.NotContains(t, got, "profissionalId")
}

func TestErrorsCarryServerMessage(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   error
		msg    string
	}{
		{"forbidden", http.StatusForbidden, `{"message":"Agendamento já faturado."}`, ErrForbidden, "Agendamento já faturado."},
		{"bad request", http.StatusBadRequest, `{"error":"Status inválido."}`, ErrBadRequest, "Status inválido."},
		{"not found", http.StatusNotFound, `not json`, ErrNotFound, ""},
		{"server", http.StatusBadGateway, `{}`, ErrUnavailable, ""},
		{"teapot", http.StatusTeapot, `{}`, ErrUnexpectedStatus, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := client.DeleteAppointment(withToken("tok"), "a1")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind))
			assert.Equal(t, tt.msg, ServerMessage(err))
		})
	}
}

func TestTransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond, logger.Nop{})
	_, err := client.ListStores(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.True(t, IsTransport(err))
}

func TestListStoresAndProfessionals(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/stores":
			_, _ = w.Write([]byte(`[{"_id":"s1","nome":"Centro","horario":{
				"segunda":{"abre":"08:00","fecha":"18:00"},
				"domingo":{"fechada":true},
				"terça":{"abre":"09:00","fecha":"17:00"}}}]`))
		case "/func/profissionais":
			_, _ = w.Write([]byte(`[{"_id":"p1","nome":" Ana ","tipo":""},{"_id":"","nome":"ghost"},{"_id":"p2","nome":"Bia","tipo":"Veterinário"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	stores, err := client.ListStores(withToken("t"))
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "Centro", stores[0].Name)
	assert.True(t, stores[0].BusinessHours[time.Sunday].Closed)
	assert.Equal(t, "09:00", stores[0].BusinessHours[time.Tuesday].Open)

	pros, err := client.ListProfessionals(withToken("t"), "s1")
	require.NoError(t, err)
	require.Len(t, pros, 2)
	assert.Equal(t, "Ana", pros[0].Name)
	assert.Equal(t, domain.KindGroomer, pros[0].Kind)
	assert.Equal(t, domain.KindVeterinarian, pros[1].Kind)
	assert.Equal(t, "s1", pros[1].StoreID)
}

func TestCustomerWithGracefulDegradation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/func/clientes/c1" {
			_, _ = w.Write([]byte(`{"_id":"c1","nome":"Maria","celular":"(11) 98888-7777","address":{"cep":"01001000"}}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	})

	c := client.GetCustomerWithGracefulDegradation(withToken("t"), "c1")
	require.NotNil(t, c)
	assert.Equal(t, "(11) 98888-7777", c.Mobile)
	assert.Equal(t, "01001000", c.Address.CEP)

	assert.Nil(t, client.GetCustomerWithGracefulDegradation(withToken("t"), "c2"))
	assert.Nil(t, client.GetCustomerWithGracefulDegradation(withToken("t"), ""))
}
