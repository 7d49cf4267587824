package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/bootstrap"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/config"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/dto"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/model"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/pkg/serverutils"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/internal/server"
	"github.com/ViniciusSouza1/backend-chatbot-challenge/pkg/database"
)

// Requires a reachable Postgres from DB_CONNECTION_STRING; skipped otherwise.
func TestApiFlow(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		t.Skip("DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		t.Skipf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	email := fmt.Sprintf("it-%d@example.com", time.Now().UnixNano())
	password := "integration-pass-1"

	var userId uuid.UUID
	defer func() {
		db.Where("email = ?", email).Delete(&model.User{})
	}()

	t.Run("Register", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/register", "", dto.RegisterRequest{Email: email, Password: password})
		require.Equal(t, 201, resp.StatusCode)

		var result serverutils.BaseResponse[dto.UserResponse]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, email, result.Data.Email)
		userId = result.Data.Id
	})

	t.Run("Duplicate register conflicts", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/register", "", dto.RegisterRequest{Email: email, Password: password})
		assert.Equal(t, 409, resp.StatusCode)
	})

	var token string
	t.Run("Login", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: password})
		require.Equal(t, 200, resp.StatusCode)

		var result serverutils.BaseResponse[dto.LoginResponse]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		token = result.Data.AccessToken
		require.NotEmpty(t, token)
	})

	var sessionId uuid.UUID
	t.Run("Anonymous session and claim", func(t *testing.T) {
		resp := postJSON(t, app, "/api/sessions", "", dto.CreateSessionRequest{})
		require.Equal(t, 201, resp.StatusCode)

		var created serverutils.BaseResponse[dto.SessionResponse]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		sessionId = created.Data.Id
		assert.Nil(t, created.Data.UserId)

		resp = postJSON(t, app, "/api/sessions/claim", token, dto.ClaimSessionsRequest{
			SessionIds: []string{sessionId.String()},
		})
		require.Equal(t, 200, resp.StatusCode)

		var claim serverutils.BaseResponse[dto.ClaimSessionsResponse]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&claim))
		assert.Equal(t, 1, claim.Data.Claimed)

		// Idempotent on repeat
		resp = postJSON(t, app, "/api/sessions/claim", token, dto.ClaimSessionsRequest{
			SessionIds: []string{sessionId.String()},
		})
		require.Equal(t, 200, resp.StatusCode)
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&claim))
		assert.Equal(t, 0, claim.Data.Claimed)
		assert.Equal(t, 1, claim.Data.AlreadyOwnedByUser)
	})

	t.Run("Messages on claimed session need auth", func(t *testing.T) {
		req := dto.CreateMessageRequest{SessionId: sessionId, Role: "user", Content: "hello"}

		resp := postJSON(t, app, "/api/messages", "", req)
		assert.Equal(t, 401, resp.StatusCode)

		resp = postJSON(t, app, "/api/messages", token, req)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("History ordering", func(t *testing.T) {
		resp := postJSON(t, app, "/api/messages", token, dto.CreateMessageRequest{
			SessionId: sessionId, Role: "assistant", Content: "reply",
		})
		require.Equal(t, 201, resp.StatusCode)

		req := httptest.NewRequest("GET", "/api/messages/by-session/"+sessionId.String(), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		getResp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, 200, getResp.StatusCode)

		var result serverutils.BaseResponse[[]dto.MessageResponse]
		require.NoError(t, json.NewDecoder(getResp.Body).Decode(&result))
		require.Len(t, result.Data, 2)
		assert.Equal(t, "hello", result.Data[0].Content)
		assert.Equal(t, "reply", result.Data[1].Content)
	})

	t.Run("Sessions by user", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/sessions/by-user/"+userId.String(), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		var result serverutils.BaseResponse[[]dto.SessionResponse]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		require.Len(t, result.Data, 1)
		assert.Equal(t, sessionId, result.Data[0].Id)
	})

	t.Run("Admin endpoints denied for regular user", func(t *testing.T) {
		for _, path := range []string{"/api/users", "/api/sessions", "/api/messages"} {
			req := httptest.NewRequest("GET", path, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, 403, resp.StatusCode, path)
		}
	})

	t.Run("Unknown session is 404 before auth", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/messages/by-session/"+uuid.NewString(), nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func postJSON(t *testing.T, app *fiber.App, path, token string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}
