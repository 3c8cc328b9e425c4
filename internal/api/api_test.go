package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/orderly-eats/gateway/internal/database"
	"github.com/orderly-eats/gateway/internal/models"
	"github.com/orderly-eats/gateway/internal/profile"
	"github.com/orderly-eats/gateway/internal/service"
	"github.com/orderly-eats/gateway/internal/upstream"
)

// fakeUploader records uploads and returns a fixed URL.
type fakeUploader struct {
	url      string
	err      error
	uploaded []byte
}

func (f *fakeUploader) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	f.uploaded = data
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type testEnv struct {
	router  *gin.Engine
	store   *profile.Store
	session *service.OrderSession
	db      *gorm.DB
}

// newTestEnv wires the full API against a stub upstream server and an
// in-memory database. No rate limiter, no picture storage unless set.
func newTestEnv(t *testing.T, upstreamURL string, pictures PictureUploader) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	client := upstream.NewClient(upstreamURL)
	store := profile.NewStore(db)
	session := service.NewOrderSession(client, store)

	router := gin.New()
	SetupAPI(router, Deps{
		Store:     store,
		Pictures:  pictures,
		Customers: service.NewCustomerService(store, client),
		Session:   session,
		Analytics: service.NewAnalyticsService(client),
		Predict:   service.NewPredictService(client),
		Contact:   service.NewContactService(db),
	})

	return &testEnv{router: router, store: store, session: session, db: db}
}

// deadUpstream points at nothing; every upstream call fails fast.
const deadUpstream = "http://127.0.0.1:1"

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func saveCompleteProfile(t *testing.T, store *profile.Store) models.Profile {
	t.Helper()
	p := models.TemplateProfile()
	p.Name = "A"
	p.Email = "a@b.com"
	p.Age = 30
	p.Gender = "Male"
	p.Language = "English"
	p.State = "Karnataka"
	p.City = "Bangalore"
	require.NoError(t, store.Save(context.Background(), p))
	return p
}
