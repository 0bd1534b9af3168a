package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sole_and_ankle/catalog/internal/auth"
	"sole_and_ankle/catalog/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdmins struct {
	admin *store.Admin
}

func (f fakeAdmins) GetAdmin(ctx context.Context, username string) (*store.Admin, error) {
	if f.admin == nil || f.admin.Username != username {
		return nil, store.ErrAdminNotFound
	}
	return f.admin, nil
}

func newRouter(t *testing.T) (*gin.Engine, *fixture, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	fx := newFixture(t)
	tokens, err := auth.NewTokenManager("s3cret", time.Minute)
	require.NoError(t, err)
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)

	h := NewHTTPHandler(fx.catalog, fakeAdmins{admin: &store.Admin{ID: 1, Username: "root", PasswordHash: hash}}, tokens)
	return h.Router(), fx, tokens
}

func do(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListCards(t *testing.T) {
	r, _, _ := newRouter(t)

	w := do(r, http.MethodGet, "/api/shoes", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "on-sale", resp.Items[0]["variant"])
	assert.Equal(t, "$150.00", resp.Items[0]["price"])
	assert.Equal(t, "$110.00", resp.Items[0]["salePrice"])
	assert.Equal(t, true, resp.Items[0]["priceStruck"])
	assert.Equal(t, "new-release", resp.Items[1]["variant"])
	assert.Equal(t, "Just released!", resp.Items[1]["tag"])
}

func TestListCardsBySlug(t *testing.T) {
	r, _, _ := newRouter(t)

	w := do(r, http.MethodGet, "/api/shoes?slug=pegasus&slug=missing&slug=lebron", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "new-release", resp.Items[0]["variant"])
	assert.Equal(t, "on-sale", resp.Items[1]["variant"])
}

func TestGetCard(t *testing.T) {
	r, _, _ := newRouter(t)

	w := do(r, http.MethodGet, "/api/shoes/lebron", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"href":"/shoe/lebron"`)

	w = do(r, http.MethodGet, "/api/shoes/missing", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClassifyEndpoint(t *testing.T) {
	r, _, _ := newRouter(t)

	released := now.AddDate(0, 0, -5).Format(time.RFC3339)
	w := do(r, http.MethodPost, "/api/classify", `{"price":150,"releaseDate":"`+released+`","numOfColors":2}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"variant":"new-release"`)
	assert.Contains(t, w.Body.String(), `"colors":"Colors"`)

	w = do(r, http.MethodPost, "/api/classify", `{"price":150,"salePrice":0,"releaseDate":"`+released+`"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"variant":"on-sale"`)
	assert.Contains(t, w.Body.String(), `"salePrice":"$0.00"`)

	w = do(r, http.MethodPost, "/api/classify", `{"price":150}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/classify", `{not json`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	r, _, tokens := newRouter(t)

	w := do(r, http.MethodPost, "/api/admin/login", `{"username":"root","password":"hunter2"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	claims, err := tokens.ValidateToken(resp["access_token"])
	require.NoError(t, err)
	assert.Equal(t, 1, claims.AdminID)

	w = do(r, http.MethodPost, "/api/admin/login", `{"username":"root","password":"nope"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/admin/login", `{"username":"ghost","password":"hunter2"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminShoeRoutes(t *testing.T) {
	r, fx, tokens := newRouter(t)
	token, err := tokens.GenerateAccessToken(1)
	require.NoError(t, err)

	body := `{"slug":"air-max","name":"Air Max","price":"59.99","releaseDate":"2025-01-01T00:00:00Z","numOfColors":4}`

	w := do(r, http.MethodPost, "/api/admin/shoes", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/admin/shoes", body, token)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"price":"$59.99"`)
	assert.Contains(t, fx.store.shoes, "air-max")

	w = do(r, http.MethodPost, "/api/admin/shoes", `{"slug":"bad","price":10,"releaseDate":"2025-01-01T00:00:00Z","numOfColors":-2}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodDelete, "/api/admin/shoes/air-max", "", token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodDelete, "/api/admin/shoes/air-max", "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	r, _, _ := newRouter(t)
	w := do(r, http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
