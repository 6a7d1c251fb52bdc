package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/infrastructure/upstream"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *upstream.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := upstream.New(upstream.Config{BaseURL: server.URL, Logger: logrus.New()})
	require.NoError(t, err)
	return client
}

func TestAddAppointmentPayload(t *testing.T) {
	var captured map[string]string
	var capturedAuth string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/appointment-ops", r.URL.Path)
		capturedAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"message": "created"})
	})

	g := NewBookingGateway(client)
	err := g.AddAppointment(context.Background(), "tok", &entity.AppointmentIntake{
		SlotID:               "s1",
		AbnormalSymptom:      "dizziness",
		BloodTestStatus:      "done",
		IsMissedMedication:   entity.IntakeYes,
		IsOverdueMedication:  entity.IntakeNo,
		IsPartnerHIVPositive: entity.IntakeNo,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok", capturedAuth)
	assert.Equal(t, "s1", captured["slot_id"])
	assert.Equal(t, "เคย", captured["patient_is_missed_medication"])
	assert.Equal(t, "ไม่เคย", captured["patient_is_overdue_medication"])
	assert.Equal(t, "dizziness", captured["patient_abnormal_symptom"])
}

func TestAvailableSlotsUnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/slot-view", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "ok",
			"data": map[string]any{
				"slots": []map[string]any{
					{"id": "s1", "doctor_id": 7, "max_appointment_count": 10, "current_appointment_count": 3},
				},
			},
		})
	})

	g := NewBookingGateway(client)
	slots, err := g.AvailableSlots(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "s1", slots[0].ID)
	assert.Equal(t, 7, slots[0].DoctorID)
	assert.False(t, slots[0].IsFull())
}

func TestLedgerTransitionPaths(t *testing.T) {
	var paths []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		paths = append(paths, r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"message": "ok"})
	})

	g := NewBookingGateway(client)
	ctx := context.Background()
	require.NoError(t, g.MarkReady(ctx, "tok", "a1"))
	require.NoError(t, g.MarkWaitingForPrescription(ctx, "tok", "a1"))
	require.NoError(t, g.MarkCompleted(ctx, "tok", "a1"))

	assert.Equal(t, []string{
		"/appointment-ledger/to-ready/a1",
		"/appointment-ledger/to-waiting-for-prescription/a1",
		"/appointment-ledger/to-completed/a1",
	}, paths)
}

func TestUpstreamFailureCarriesStatusAndMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{"message": "slot is full"})
	})

	g := NewBookingGateway(client)
	err := g.AddAppointment(context.Background(), "tok", &entity.AppointmentIntake{SlotID: "s1"})

	require.Error(t, err)
	assert.True(t, upstream.IsStatus(err, http.StatusConflict))
	assert.Contains(t, err.Error(), "slot is full")
}

func TestUpdateDeliveryStatusBody(t *testing.T) {
	var captured map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/deliveries/d1/status", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]any{"message": "ok"})
	})

	g := NewDeliveriesGateway(client)
	require.NoError(t, g.UpdateDeliveryStatus(context.Background(), "tok", "d1", entity.OrderStatusDelivered))

	assert.Equal(t, "-", captured["description"])
	assert.Equal(t, "DELIVERED", captured["status"])
}

func TestProductsQueryJoinsIDs(t *testing.T) {
	var ids string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		ids = r.URL.Query().Get("ids")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "ok",
			"data":    []map[string]any{{"id": 1, "en_name": "paracetamol", "unit_price": 12.5}},
		})
	})

	g := NewInventoryGateway(client)
	products, err := g.Products(context.Background(), "tok", "1,2,3")
	require.NoError(t, err)

	assert.Equal(t, "1,2,3", ids)
	require.Len(t, products, 1)
	assert.Equal(t, "paracetamol", products[0].EnName)
}
