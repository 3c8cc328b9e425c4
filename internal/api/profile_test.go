package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderly-eats/gateway/internal/models"
)

type profileResponse struct {
	Profile  models.Profile `json:"profile"`
	Complete bool           `json:"complete"`
}

func TestGetProfileDefaultsToTemplate(t *testing.T) {
	env := newTestEnv(t, deadUpstream, nil)

	w := performRequest(env.router, http.MethodGet, "/api/v1/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp profileResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "User Profile", resp.Profile.Name)
	assert.False(t, resp.Complete)
}

func TestUpdateProfileRoundTrip(t *testing.T) {
	env := newTestEnv(t, deadUpstream, nil)

	p := models.TemplateProfile()
	p.Name = "A"
	p.Email = "a@b.com"
	p.Age = 30
	p.Gender = "Male"
	p.Language = "English"
	p.State = "Karnataka"
	p.City = "Bangalore"

	w := performRequest(env.router, http.MethodPut, "/api/v1/profile", p)
	require.Equal(t, http.StatusOK, w.Code)

	var resp profileResponse
	decodeBody(t, w, &resp)
	assert.True(t, resp.Complete)

	w = performRequest(env.router, http.MethodGet, "/api/v1/profile", nil)
	decodeBody(t, w, &resp)
	assert.Equal(t, "A", resp.Profile.Name)
	assert.Equal(t, 30, resp.Profile.Age)
}

func TestUpdateProfileRejectsBadBody(t *testing.T) {
	env := newTestEnv(t, deadUpstream, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", bytes.NewBufferString("{broken"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetProfile(t *testing.T) {
	env := newTestEnv(t, deadUpstream, nil)
	saveCompleteProfile(t, env.store)

	w := performRequest(env.router, http.MethodPost, "/api/v1/profile/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp profileResponse
	w = performRequest(env.router, http.MethodGet, "/api/v1/profile", nil)
	decodeBody(t, w, &resp)
	assert.Equal(t, models.TemplateProfile(), resp.Profile)
}

func TestUploadPictureWithoutStorage(t *testing.T) {
	env := newTestEnv(t, deadUpstream, nil)

	w := performRequest(env.router, http.MethodPost, "/api/v1/profile/picture", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestUploadPicture(t *testing.T) {
	uploader := &fakeUploader{url: "https://pics.example.com/p.png"}
	env := newTestEnv(t, deadUpstream, uploader)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("picture", "me.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/picture", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []byte("png-bytes"), uploader.uploaded)

	var resp profileResponse
	w = performRequest(env.router, http.MethodGet, "/api/v1/profile", nil)
	decodeBody(t, w, &resp)
	assert.Equal(t, "https://pics.example.com/p.png", resp.Profile.ProfileImage)
}

func TestProfileOptions(t *testing.T) {
	env := newTestEnv(t, deadUpstream, nil)

	w := performRequest(env.router, http.MethodGet, "/api/v1/profile/options", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		States []string            `json:"states"`
		Cities map[string][]string `json:"cities"`
	}
	decodeBody(t, w, &resp)
	assert.Len(t, resp.States, 15)
	assert.Contains(t, resp.Cities["Uttarakhand"], "Haridwar")
}
