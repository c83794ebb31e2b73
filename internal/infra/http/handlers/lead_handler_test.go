package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/michelrahaddad/sitevidah-sub000/internal/entity"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func captureLeadRequest(t *testing.T, body map[string]string) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/leads", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCaptureLead(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(lead *entity.Lead) bool {
		return lead.Phone == "11988887777" && lead.Source == "hero"
	})).Return(nil)

	handler := NewLeadHandler(repo)
	rec := httptest.NewRecorder()

	handler.CaptureLead(rec, captureLeadRequest(t, map[string]string{
		"name":   "Maria",
		"phone":  "(11) 98888-7777",
		"source": "hero",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CaptureLeadResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	repo.AssertExpectations(t)
}

func TestCaptureLeadRejectsInvalidPhone(t *testing.T) {
	repo := new(MockLeadRepository)
	handler := NewLeadHandler(repo)
	rec := httptest.NewRecorder()

	handler.CaptureLead(rec, captureLeadRequest(t, map[string]string{
		"phone": "123",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestCaptureLeadRejectsInvalidJSON(t *testing.T) {
	repo := new(MockLeadRepository)
	handler := NewLeadHandler(repo)
	rec := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/api/leads", bytes.NewReader([]byte("{invalid")))
	handler.CaptureLead(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCaptureLeadRateLimit(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	handler := NewLeadHandler(repo)

	var last *httptest.ResponseRecorder
	for i := 0; i < 11; i++ {
		last = httptest.NewRecorder()
		req := captureLeadRequest(t, map[string]string{
			"phone": fmt.Sprintf("119888877%02d", i),
		})
		req.RemoteAddr = "203.0.113.7:4567"
		handler.CaptureLead(last, req)
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	repo.AssertNumberOfCalls(t, "Upsert", 10)
}
