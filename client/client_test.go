package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swift-aid/admin-console/client"
	"github.com/swift-aid/admin-console/models"
	"github.com/swift-aid/admin-console/session"
)

func jsonDecode(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func authedSession() *session.Manager {
	m := session.NewManager(session.NewMemoryStore())
	m.SetCredentials(models.Admin{
		ID:    "admin1",
		Email: "a@b.com",
		Agency: models.Agency{
			ID:   "agency1",
			Name: "Accra Fire Service",
		},
	}, "tok1", "")
	return m
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/auth/login", r.URL.Path)
		w.Write([]byte(`{
			"admin": {"admin_id": "admin1", "name": "Ama Mensah", "email": "a@b.com", "badgeNumber": "FD001", "role": "admin"},
			"token": "tok1"
		}`))
	}))
	defer srv.Close()

	sess := session.NewManager(session.NewMemoryStore())
	c := client.New(srv.URL, sess)

	user, token, err := c.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "secret123"})
	assert.NoError(t, err)
	assert.Equal(t, "tok1", token)
	assert.Equal(t, "admin1", user.ID)
	assert.Equal(t, "Ama Mensah", user.Name)
}

func TestLoginServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "Invalid email or password"}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL, session.NewManager(session.NewMemoryStore()))

	_, _, err := c.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "nope"})
	var apiErr *client.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestDashboardUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok1", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Write([]byte(`{"data": {"overview": {"total_responders": 12, "available_responders": 9, "availability_rate": 75}}}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL, authedSession())

	d, err := c.Dashboard(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 12, d.Overview.TotalResponders)
	assert.Equal(t, 9, d.Overview.AvailableResponders)
}

func TestUnauthorizedInvalidatesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "token expired"}`))
	}))
	defer srv.Close()

	sess := authedSession()
	c := client.New(srv.URL, sess)

	_, err := c.Dashboard(context.Background())
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.False(t, sess.IsAuthenticated())
	assert.Empty(t, sess.Token())
}

func TestAuthedCallWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should never be issued without a token")
	}))
	defer srv.Close()

	c := client.New(srv.URL, session.NewManager(session.NewMemoryStore()))

	_, err := c.Dashboard(context.Background())
	assert.ErrorIs(t, err, client.ErrNoToken)
}

func TestEmergenciesQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "Active", q.Get("status"))
		assert.Empty(t, q.Get("severity"))
		w.Write([]byte(`{"data": {
			"emergencies": [{"_id": "e1", "emergency_type": "Fire", "status": "Active", "severity": "High"}],
			"pagination": {"current_page": 2, "total_pages": 5, "total_count": 93, "per_page": 20}
		}}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL, authedSession())

	list, err := c.Emergencies(context.Background(), client.EmergencyQuery{Page: 2, Status: "Active"})
	assert.NoError(t, err)
	assert.Len(t, list.Emergencies, 1)
	assert.Equal(t, 2, list.Pagination.CurrentPage)
	assert.Equal(t, 93, list.Pagination.TotalCount)
}

func TestOngoingEmergencies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/emergencies/ongoing", r.URL.Path)
		w.Write([]byte(`{"data": {"emergencies": [{"_id": "e1", "emergency_location": {"type": "Point", "coordinates": [-0.18, 5.65]}}], "count": 1}}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL, authedSession())

	ongoing, err := c.OngoingEmergencies(context.Background())
	assert.NoError(t, err)
	assert.Len(t, ongoing.Emergencies, 1)
	assert.InDelta(t, -0.18, ongoing.Emergencies[0].EmergencyLocation.Longitude(), 1e-9)
}

func TestResponders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id": "r1", "name": "Kofi", "status": "available"}]`))
	}))
	defer srv.Close()

	c := client.New(srv.URL, authedSession())

	list, err := c.Responders(context.Background())
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "available", list[0].Status)
}

func TestCreateResponderValidationNeverHitsNetwork(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := client.New(srv.URL, authedSession())

	_, err := c.CreateResponder(context.Background(), models.NewResponderInput{
		Name:  "Kofi",
		Email: "not-an-email",
	})
	var verr *client.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "Email")
	assert.Contains(t, verr.Fields, "Password")
	assert.Zero(t, requests)
}

func TestCreateResponderCoordinateRange(t *testing.T) {
	c := client.New("http://unused", authedSession())

	_, err := c.CreateResponder(context.Background(), models.NewResponderInput{
		Name:        "Kofi",
		Email:       "kofi@agency.com",
		Password:    "secret123",
		Phone:       "+233-20-111-2222",
		BadgeNumber: "FD001",
		Agency:      "Accra Fire Service",
		CurrentLocation: models.Location{
			Type:        "Point",
			Coordinates: []float64{200, 5.65},
		},
	})
	var verr *client.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields["location"], "Longitude")
}

func TestCreateResponderAppliesDefaults(t *testing.T) {
	var got models.NewResponderInput
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, jsonDecode(r, &got))
		w.Write([]byte(`{"responder": {"_id": "r9", "name": "Kofi", "status": "available"}}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL, authedSession())

	created, err := c.CreateResponder(context.Background(), models.NewResponderInput{
		Name:        "Kofi",
		Email:       "kofi@agency.com",
		Password:    "secret123",
		Phone:       "+233-20-111-2222",
		BadgeNumber: "FD001",
	})
	assert.NoError(t, err)
	assert.Equal(t, "r9", created.ID)
	assert.Equal(t, models.ResponderAvailable, got.Status)
	assert.Equal(t, "Point", got.CurrentLocation.Type)
	assert.Equal(t, models.DefaultResponderCoordinates, got.CurrentLocation.Coordinates)
	assert.Equal(t, "Accra Fire Service", got.Agency)
	assert.Equal(t, "agency1", got.AgencyID)
}

func TestAnalyticsKeepsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {
			"performance": {"total_emergencies": 42, "resolution_rate": 87.5},
			"trends": {"emergencies_trend": -3.2}
		}}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL, authedSession())

	a, err := c.Analytics(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 42, a.Data.Performance.TotalEmergencies)
	assert.InDelta(t, -3.2, a.Data.Trends.EmergenciesTrend, 1e-9)
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := client.New(srv.URL, authedSession())

	_, err := c.Dashboard(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, client.ErrUnauthorized)
	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "check your connection")
}

func TestAPIErrorFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := client.New(srv.URL, authedSession())

	_, err := c.ResponseTimes(context.Background())
	var apiErr *client.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Failed to fetch response times", apiErr.Message)
}

func TestImageURL(t *testing.T) {
	c := client.New("https://swift-aid-backend.onrender.com", authedSession())
	assert.Equal(t,
		"https://swift-aid-backend.onrender.com/emergency/image/68d47ce80168cf6418c6147f",
		c.ImageURL("68d47ce80168cf6418c6147f"),
	)
}
