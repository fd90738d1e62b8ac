package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"tripmind/internal/handlers"
	"tripmind/internal/models"
	"tripmind/internal/planner"
	"tripmind/internal/services"
	"tripmind/pkg/logger"
	"tripmind/routes"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeTripRepo struct {
	created    []*models.Trip
	listDocs   []bson.M
	listUserID string
	listLimit  int64
	err        error
}

func (f *fakeTripRepo) Create(ctx context.Context, trip *models.Trip) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, trip)
	return primitive.NewObjectID().Hex(), nil
}

func (f *fakeTripRepo) List(ctx context.Context, userID string, limit int64) ([]bson.M, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.listUserID = userID
	f.listLimit = limit
	return f.listDocs, nil
}

type fakePreferenceRepo struct {
	created []*models.Preference
	doc     bson.M
	err     error
}

func (f *fakePreferenceRepo) Create(ctx context.Context, pref *models.Preference) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, pref)
	return fmt.Sprintf("pref-%d", len(f.created)), nil
}

func (f *fakePreferenceRepo) GetByUserID(ctx context.Context, userID string) (bson.M, error) {
	return f.doc, f.err
}

func newTestRouter(trips *fakeTripRepo, prefs *fakePreferenceRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()

	clock := func() time.Time {
		return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	}

	plannerHandler := handlers.NewPlannerHandler(
		services.NewPlannerService(planner.New(planner.WithClock(clock)), log))
	tripHandler := handlers.NewTripHandler(services.NewTripService(trips, log))
	preferenceHandler := handlers.NewPreferenceHandler(services.NewPreferenceService(prefs, log))

	router := gin.New()
	api := router.Group("/api")
	routes.SetupAPIRoutes(api, plannerHandler, tripHandler, preferenceHandler)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPlanTrip(t *testing.T) {
	router := newTestRouter(&fakeTripRepo{}, &fakePreferenceRepo{})

	w := doJSON(router, http.MethodPost, "/api/plan", `{"query":"commute to office"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp models.PlanResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Query != "commute to office" {
		t.Errorf("query = %q, want the request query echoed", resp.Query)
	}
	if len(resp.Options) != 5 {
		t.Fatalf("expected 5 options, got %d", len(resp.Options))
	}

	// Same query again: byte-for-byte identical option list.
	again := doJSON(router, http.MethodPost, "/api/plan", `{"query":"commute to office"}`)
	var repeat models.PlanResponse
	if err := json.Unmarshal(again.Body.Bytes(), &repeat); err != nil {
		t.Fatalf("failed to decode repeat response: %v", err)
	}
	if !reflect.DeepEqual(resp.Options, repeat.Options) {
		t.Error("repeated plan call returned different options for the same query")
	}
}

func TestPlanTripRejectsShortQuery(t *testing.T) {
	router := newTestRouter(&fakeTripRepo{}, &fakePreferenceRepo{})

	w := doJSON(router, http.MethodPost, "/api/plan", `{"query":"go"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestBookTrip(t *testing.T) {
	trips := &fakeTripRepo{}
	router := newTestRouter(trips, &fakePreferenceRepo{})

	body := `{
		"user_id": "u1",
		"query": "commute to office",
		"selection": {"mode":"cab","provider":"Ola","price":250.5,"duration_minutes":40,"eta":"10:15 AM"}
	}`
	w := doJSON(router, http.MethodPost, "/api/book", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		OK bool   `json:"ok"`
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.OK || resp.ID == "" {
		t.Errorf("response = %+v, want ok with a non-empty id", resp)
	}

	if len(trips.created) != 1 {
		t.Fatalf("expected 1 persisted trip, got %d", len(trips.created))
	}
	trip := trips.created[0]
	if trip.Status != models.TripStatusConfirmed {
		t.Errorf("status = %q, want confirmed", trip.Status)
	}
	if trip.Currency != "INR" {
		t.Errorf("currency = %q, want INR default", trip.Currency)
	}
	if trip.ReturnTrip {
		t.Error("return_trip should default to false")
	}
}

func TestBookTripRejectsUnknownMode(t *testing.T) {
	trips := &fakeTripRepo{}
	router := newTestRouter(trips, &fakePreferenceRepo{})

	body := `{
		"user_id": "u1",
		"query": "commute",
		"selection": {"mode":"boat","provider":"Ferry","price":50,"duration_minutes":30,"eta":"10:15 AM"}
	}`
	w := doJSON(router, http.MethodPost, "/api/book", body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	if len(trips.created) != 0 {
		t.Error("validation failure must not reach the store")
	}
}

func TestBookTripRejectsMissingUserID(t *testing.T) {
	router := newTestRouter(&fakeTripRepo{}, &fakePreferenceRepo{})

	body := `{"query":"commute","selection":{"mode":"cab","provider":"Uber","price":100,"duration_minutes":30,"eta":"10:00 AM"}}`
	w := doJSON(router, http.MethodPost, "/api/book", body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestListTrips(t *testing.T) {
	oid := primitive.NewObjectID()
	trips := &fakeTripRepo{
		listDocs: []bson.M{
			{
				"_id":        oid,
				"user_id":    "u1",
				"mode":       "cab",
				"created_at": primitive.NewDateTimeFromTime(time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)),
			},
		},
	}
	router := newTestRouter(trips, &fakePreferenceRepo{})

	w := doJSON(router, http.MethodGet, "/api/trips?user_id=u1&limit=10", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	if trips.listUserID != "u1" || trips.listLimit != 10 {
		t.Errorf("filter not forwarded: user=%q limit=%d", trips.listUserID, trips.listLimit)
	}

	var resp struct {
		Items []map[string]interface{} `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(resp.Items))
	}
	if resp.Items[0]["_id"] != oid.Hex() {
		t.Errorf("_id = %v, want hex string", resp.Items[0]["_id"])
	}
	if resp.Items[0]["created_at"] != "2025-03-14T09:30:00Z" {
		t.Errorf("created_at = %v, want RFC3339 string", resp.Items[0]["created_at"])
	}
}

func TestListTripsDefaults(t *testing.T) {
	trips := &fakeTripRepo{}
	router := newTestRouter(trips, &fakePreferenceRepo{})

	w := doJSON(router, http.MethodGet, "/api/trips", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if trips.listUserID != "" {
		t.Errorf("user filter = %q, want empty", trips.listUserID)
	}
	if trips.listLimit != 50 {
		t.Errorf("limit = %d, want default 50", trips.listLimit)
	}
	if !strings.Contains(w.Body.String(), `"items":[]`) {
		t.Errorf("empty list should marshal as []; body: %s", w.Body.String())
	}
}

func TestGetPreferencesRequiresUserID(t *testing.T) {
	router := newTestRouter(&fakeTripRepo{}, &fakePreferenceRepo{})

	w := doJSON(router, http.MethodGet, "/api/preferences", "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestGetPreferencesMissingRecord(t *testing.T) {
	router := newTestRouter(&fakeTripRepo{}, &fakePreferenceRepo{})

	w := doJSON(router, http.MethodGet, "/api/preferences?user_id=nobody", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	item, present := resp["item"]
	if !present {
		t.Fatal("response missing item key")
	}
	if item != nil {
		t.Errorf("item = %v, want null", item)
	}
}

func TestGetPreferences(t *testing.T) {
	oid := primitive.NewObjectID()
	prefs := &fakePreferenceRepo{
		doc: bson.M{"_id": oid, "user_id": "u1", "budget": 500.0},
	}
	router := newTestRouter(&fakeTripRepo{}, prefs)

	w := doJSON(router, http.MethodGet, "/api/preferences?user_id=u1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Item map[string]interface{} `json:"item"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Item["_id"] != oid.Hex() {
		t.Errorf("_id = %v, want hex string", resp.Item["_id"])
	}
}

func TestSetPreferencesAccumulatesRecords(t *testing.T) {
	prefs := &fakePreferenceRepo{}
	router := newTestRouter(&fakeTripRepo{}, prefs)

	body := `{"user_id":"u1","budget":500,"favorite_modes":["metro","cab"]}`

	first := doJSON(router, http.MethodPost, "/api/preferences", body)
	second := doJSON(router, http.MethodPost, "/api/preferences", body)
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("statuses = %d/%d, want 200/200", first.Code, second.Code)
	}

	var a, b struct {
		OK bool   `json:"ok"`
		ID string `json:"id"`
	}
	if err := json.Unmarshal(first.Body.Bytes(), &a); err != nil {
		t.Fatalf("failed to decode first response: %v", err)
	}
	if err := json.Unmarshal(second.Body.Bytes(), &b); err != nil {
		t.Fatalf("failed to decode second response: %v", err)
	}
	if a.ID == b.ID {
		t.Errorf("repeated set returned the same id %q; expected a fresh record", a.ID)
	}
	if len(prefs.created) != 2 {
		t.Errorf("expected 2 stored records, got %d", len(prefs.created))
	}
}

func TestSetPreferencesRejectsNegativeBudget(t *testing.T) {
	prefs := &fakePreferenceRepo{}
	router := newTestRouter(&fakeTripRepo{}, prefs)

	w := doJSON(router, http.MethodPost, "/api/preferences", `{"user_id":"u1","budget":-10}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	if len(prefs.created) != 0 {
		t.Error("validation failure must not reach the store")
	}
}

func TestSetPreferencesRejectsUnknownMode(t *testing.T) {
	router := newTestRouter(&fakeTripRepo{}, &fakePreferenceRepo{})

	w := doJSON(router, http.MethodPost, "/api/preferences", `{"user_id":"u1","favorite_modes":["boat"]}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}
