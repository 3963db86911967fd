package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avestaexchange/avesta/internal/application/faq/dto"
	"github.com/avestaexchange/avesta/internal/interfaces/http/handlers/testutil"
	"github.com/avestaexchange/avesta/internal/shared/errors"
)

type mockFAQService struct {
	listPublicFn func(ctx context.Context, lang string) ([]*dto.FAQResponse, error)
	listFn       func(ctx context.Context) ([]*dto.FAQResponse, error)
	createFn     func(ctx context.Context, req dto.FAQRequest) (*dto.FAQResponse, error)
	updateFn     func(ctx context.Context, id uint, req dto.FAQRequest) (*dto.FAQResponse, error)
	deleteFn     func(ctx context.Context, id uint) error
}

func (m *mockFAQService) ListPublic(ctx context.Context, lang string) ([]*dto.FAQResponse, error) {
	return m.listPublicFn(ctx, lang)
}

func (m *mockFAQService) List(ctx context.Context) ([]*dto.FAQResponse, error) {
	return m.listFn(ctx)
}

func (m *mockFAQService) Create(ctx context.Context, req dto.FAQRequest) (*dto.FAQResponse, error) {
	return m.createFn(ctx, req)
}

func (m *mockFAQService) Update(ctx context.Context, id uint, req dto.FAQRequest) (*dto.FAQResponse, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockFAQService) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

func validFAQRequest() dto.FAQRequest {
	return dto.FAQRequest{
		Question: "How are rates updated?",
		Answer:   "Every **30 minutes**.",
		Category: "rates",
		Language: "en",
		Order:    1,
	}
}

func TestFAQHandler_ListPublic_PassesLanguage(t *testing.T) {
	var gotLang string
	svc := &mockFAQService{
		listPublicFn: func(ctx context.Context, lang string) ([]*dto.FAQResponse, error) {
			gotLang = lang
			return []*dto.FAQResponse{{ID: 1, Question: "q", AnswerHTML: "<p>a</p>", Language: "fa"}}, nil
		},
	}
	handler := NewFAQHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/faqs", nil)
	testutil.SetQueryParams(c, map[string]string{"lang": "fa"})
	handler.ListPublic(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fa", gotLang)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var faqs []dto.FAQResponse
	require.NoError(t, json.Unmarshal(resp.Data, &faqs))
	require.Len(t, faqs, 1)
	assert.Equal(t, "<p>a</p>", faqs[0].AnswerHTML)
}

func TestFAQHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		serviceErr error
		wantStatus int
	}{
		{name: "success", body: validFAQRequest(), wantStatus: http.StatusCreated},
		{name: "missing fields", body: map[string]string{"question": "only"}, wantStatus: http.StatusBadRequest},
		{
			name: "unsupported language",
			body: func() dto.FAQRequest {
				r := validFAQRequest()
				r.Language = "de"
				return r
			}(),
			wantStatus: http.StatusBadRequest,
		},
		{name: "service failure", body: validFAQRequest(), serviceErr: errors.NewInternalError("Failed to create FAQ"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockFAQService{
				createFn: func(ctx context.Context, req dto.FAQRequest) (*dto.FAQResponse, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return &dto.FAQResponse{ID: 5, Question: req.Question, IsActive: true}, nil
				},
			}
			handler := NewFAQHandler(svc, testutil.NewMockLogger())
			c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/faqs", tt.body)

			handler.Create(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestFAQHandler_UpdateAndDelete(t *testing.T) {
	var updatedID, deletedID uint
	svc := &mockFAQService{
		updateFn: func(ctx context.Context, id uint, req dto.FAQRequest) (*dto.FAQResponse, error) {
			updatedID = id
			if id == 404 {
				return nil, errors.NewNotFoundError("FAQ not found")
			}
			return &dto.FAQResponse{ID: id}, nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}
	handler := NewFAQHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/faqs", validFAQRequest())
	testutil.SetQueryParams(c, map[string]string{"id": "12"})
	handler.Update(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(12), updatedID)

	c, w = testutil.NewTestContext(http.MethodPut, "/api/admin/faqs", validFAQRequest())
	testutil.SetQueryParams(c, map[string]string{"id": "404"})
	handler.Update(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	c, w = testutil.NewTestContext(http.MethodPut, "/api/admin/faqs", validFAQRequest())
	handler.Update(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = testutil.NewTestContext(http.MethodDelete, "/api/admin/faqs", nil)
	testutil.SetQueryParams(c, map[string]string{"id": "8"})
	handler.Delete(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(8), deletedID)
}
