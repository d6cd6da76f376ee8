package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/voyago-backend/internal/config"
	"github.com/voyago/voyago-backend/internal/repository"
	"github.com/voyago/voyago-backend/internal/services"
)

type memSessionRepo struct {
	nextID   int64
	sessions map[int64]*repository.Session
}

func (r *memSessionRepo) Create(ctx context.Context, userID *int64) (*repository.Session, error) {
	r.nextID++
	session := &repository.Session{
		ID:                 r.nextID,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
		ActiveSearchParams: []byte("{}"),
	}
	if userID != nil {
		session.UserID = sql.NullInt64{Int64: *userID, Valid: true}
	}
	r.sessions[session.ID] = session
	return session, nil
}

func (r *memSessionRepo) Get(ctx context.Context, id int64) (*repository.Session, error) {
	return r.sessions[id], nil
}

func (r *memSessionRepo) GetOrCreateActive(ctx context.Context, userID *int64) (*repository.Session, error) {
	for _, s := range r.sessions {
		if userID != nil && s.UserID.Valid && s.UserID.Int64 == *userID {
			return s, nil
		}
	}
	return r.Create(ctx, userID)
}

func (r *memSessionRepo) UpdateSearchParams(ctx context.Context, id int64, params []byte) error {
	r.sessions[id].ActiveSearchParams = params
	return nil
}

func (r *memSessionRepo) Delete(ctx context.Context, id int64) error {
	delete(r.sessions, id)
	return nil
}

type memMessageRepo struct {
	nextID   int64
	messages []repository.Message
}

func (r *memMessageRepo) Create(ctx context.Context, message repository.Message) (int64, error) {
	r.nextID++
	message.ID = r.nextID
	message.Timestamp = time.Now().Add(time.Duration(r.nextID) * time.Millisecond)
	r.messages = append(r.messages, message)
	return message.ID, nil
}

func (r *memMessageRepo) ListBySession(ctx context.Context, sessionID int64) ([]repository.Message, error) {
	var out []repository.Message
	for _, m := range r.messages {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

type memPackageRepo struct{}

func (r *memPackageRepo) SearchByDestination(ctx context.Context, destination string, limit int) ([]repository.PackageWithHotel, error) {
	return nil, nil
}

func (r *memPackageRepo) SearchByDestinationOrCity(ctx context.Context, destination string, limit int) ([]repository.PackageWithHotel, error) {
	return nil, nil
}

func (r *memPackageRepo) ListAll(ctx context.Context, limit int) ([]repository.PackageWithHotel, error) {
	return nil, nil
}

func (r *memPackageRepo) ListTreasureHunt(ctx context.Context, limit int) ([]repository.Package, error) {
	return nil, nil
}

func (r *memPackageRepo) ListWhatsHot(ctx context.Context, limit int) ([]repository.Package, error) {
	return nil, nil
}

func newTestApp() *fiber.App {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	cfg := &config.Config{
		LLM: config.LLMConfig{MaxTokens: 500, TimeoutSeconds: 1},
	}

	// No provider configured: chat answers from the keyword fallback
	svc := services.NewServices(cfg,
		nil,
		&memSessionRepo{sessions: map[int64]*repository.Session{}},
		&memMessageRepo{},
		&memPackageRepo{},
		log,
	)

	app := fiber.New()
	SetupRoutes(app, svc, log)
	return app
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestChatFallbackEndToEnd(t *testing.T) {
	app := newTestApp()

	payload := []byte(`{"user_id":1,"message":"I want to go to Hawaii"}`)
	req := httptest.NewRequest("POST", "/api/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "Hawaii sounds amazing! What time of year are you thinking of traveling, and how many people will be going?", body["response"])
	assert.Nil(t, body["search_results"])

	sessionID, ok := body["session_id"].(float64)
	require.True(t, ok, "session_id should be a number")
	assert.Greater(t, sessionID, float64(0))
}

func TestChatRequiresMessage(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/api/chat", bytes.NewReader([]byte(`{"user_id":1}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestChatHistoryCreatesSession(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/chat/history/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Greater(t, body["session_id"].(float64), float64(0))
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
