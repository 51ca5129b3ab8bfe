package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/haveanidea/api/internal/database"
	"github.com/haveanidea/api/internal/middleware"
	"github.com/haveanidea/api/internal/models"
	"github.com/haveanidea/api/internal/services"
	"github.com/haveanidea/api/pkg/auth"
)

type testEnv struct {
	router *gin.Engine
	db     *database.Database
	gormDB *gorm.DB
	jwt    *auth.JWTManager
}

// newTestEnv wires the handlers against an in-memory store with the same
// routes the server registers.
func newTestEnv(t *testing.T, storage services.ObjectStorage) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gormDB.AutoMigrate(&models.User{}, &models.Idea{}, &models.Upload{}))

	d := database.NewDatabase(gormDB)
	jwtMgr := auth.NewJWTManager("test-secret", auth.TokenLifetime)

	authH := NewAuthHandler(d, jwtMgr)
	ideaH := NewIdeaHandler(d, nil)
	uploadH := NewUploadHandler(d, storage)

	authRequired := middleware.AuthMiddleware(jwtMgr)

	r := gin.New()
	r.GET("/health", Health)
	r.POST("/auth/login", authH.Login)
	r.GET("/auth/profile", authRequired, authH.Profile)
	r.GET("/ideas", ideaH.List)
	r.GET("/ideas/:id", ideaH.Get)
	r.POST("/ideas", authRequired, ideaH.Create)
	r.PUT("/ideas/:id", authRequired, ideaH.Update)
	r.DELETE("/ideas/:id", authRequired, ideaH.Delete)
	r.PUT("/ideas/:id/launch", authRequired, ideaH.UpdateLaunch)
	r.POST("/upload", authRequired, uploadH.Upload)

	return &testEnv{router: r, db: d, gormDB: gormDB, jwt: jwtMgr}
}

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env testEnvelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

// login performs the real login flow and returns the issued token and user.
func (e *testEnv) login(t *testing.T, wallet string) (string, models.User) {
	t.Helper()

	w, env := e.request(t, http.MethodPost, "/auth/login", "", gin.H{"wallet_address": wallet})
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User
}

// newExpiredToken signs with the same secret but an expiry in the past.
func newExpiredToken(t *testing.T, wallet string) string {
	t.Helper()
	token, err := auth.NewJWTManager("test-secret", -time.Minute).Issue(wallet)
	require.NoError(t, err)
	return token
}

// setDeployer rewrites the deployer wallet directly; the public API always
// sets it to the creator's wallet, but authorization must honor whatever the
// record holds.
func (e *testEnv) setDeployer(t *testing.T, ideaID uint, wallet string) {
	t.Helper()
	require.NoError(t, e.gormDB.Model(&models.Idea{}).Where("id = ?", ideaID).Update("deployer", wallet).Error)
}

func (e *testEnv) createIdea(t *testing.T, token string, body gin.H) models.IdeaResponse {
	t.Helper()
	w, env := e.request(t, http.MethodPost, "/ideas", token, body)
	require.Equal(t, http.StatusOK, w.Code, "create failed: %s", w.Body.String())

	var resp models.IdeaResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	return resp
}
