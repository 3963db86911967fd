package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avestaexchange/avesta/internal/application/testimonial/dto"
	"github.com/avestaexchange/avesta/internal/interfaces/http/handlers/testutil"
	"github.com/avestaexchange/avesta/internal/shared/errors"
)

type mockTestimonialService struct {
	items   []*dto.TestimonialResponse
	err     error
	lastID  uint
	lastReq dto.TestimonialRequest
}

func (m *mockTestimonialService) ListPublic(ctx context.Context, lang string) ([]*dto.TestimonialResponse, error) {
	return m.items, m.err
}

func (m *mockTestimonialService) List(ctx context.Context) ([]*dto.TestimonialResponse, error) {
	return m.items, m.err
}

func (m *mockTestimonialService) Create(ctx context.Context, req dto.TestimonialRequest) (*dto.TestimonialResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &dto.TestimonialResponse{ID: 1, Name: req.Name, Rating: 5}, nil
}

func (m *mockTestimonialService) Update(ctx context.Context, id uint, req dto.TestimonialRequest) (*dto.TestimonialResponse, error) {
	m.lastID, m.lastReq = id, req
	if m.err != nil {
		return nil, m.err
	}
	return &dto.TestimonialResponse{ID: id, Name: req.Name}, nil
}

func (m *mockTestimonialService) Delete(ctx context.Context, id uint) error {
	m.lastID = id
	return m.err
}

func TestTestimonialHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]interface{}
		wantStatus int
	}{
		{
			name:       "success",
			body:       map[string]interface{}{"name": "Sara", "role": "Trader", "content": "Fast and fair", "language": "fa"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "rating out of range",
			body:       map[string]interface{}{"name": "Sara", "role": "Trader", "content": "ok", "language": "en", "rating": 6},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid image url",
			body:       map[string]interface{}{"name": "Sara", "role": "Trader", "content": "ok", "language": "en", "image": "not a url"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing content",
			body:       map[string]interface{}{"name": "Sara", "role": "Trader", "language": "en"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockTestimonialService{}
			handler := NewTestimonialHandler(svc, testutil.NewMockLogger())
			c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/testimonials", tt.body)

			handler.Create(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestTestimonialHandler_ListAndDelete(t *testing.T) {
	svc := &mockTestimonialService{items: []*dto.TestimonialResponse{{ID: 1}, {ID: 2}}}
	handler := NewTestimonialHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/testimonials", nil)
	handler.ListPublic(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/admin/testimonials", nil)
	handler.List(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodDelete, "/api/admin/testimonials", nil)
	testutil.SetQueryParams(c, map[string]string{"id": "2"})
	handler.Delete(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(2), svc.lastID)

	svc.err = errors.NewNotFoundError("Testimonial not found")
	c, w = testutil.NewTestContext(http.MethodDelete, "/api/admin/testimonials", nil)
	testutil.SetQueryParams(c, map[string]string{"id": "3"})
	handler.Delete(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTestimonialHandler_Update(t *testing.T) {
	svc := &mockTestimonialService{}
	handler := NewTestimonialHandler(svc, testutil.NewMockLogger())

	inactive := false
	body := dto.TestimonialRequest{Name: "Ali", Role: "Importer", Content: "Great", Language: "en", Rating: 4, IsActive: &inactive}
	c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/testimonials", body)
	testutil.SetQueryParams(c, map[string]string{"id": "4"})

	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), svc.lastID)
	if assert.NotNil(t, svc.lastReq.IsActive) {
		assert.False(t, *svc.lastReq.IsActive)
	}
}
