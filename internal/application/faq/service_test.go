package faq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avestaexchange/avesta/internal/application/faq/dto"
	"github.com/avestaexchange/avesta/internal/domain/faq"
	"github.com/avestaexchange/avesta/internal/shared/errors"
	"github.com/avestaexchange/avesta/internal/shared/logger"
	"github.com/avestaexchange/avesta/internal/shared/services/markdown"
)

type mockFAQRepo struct {
	items         map[uint]*faq.FAQ
	listLangFunc  func(ctx context.Context, lang string) ([]*faq.FAQ, error)
	requestedLang string
}

func newMockFAQRepo() *mockFAQRepo { return &mockFAQRepo{items: map[uint]*faq.FAQ{}} }

func (m *mockFAQRepo) Create(_ context.Context, f *faq.FAQ) error {
	f.SetID(uint(len(m.items) + 1))
	m.items[f.ID()] = f
	return nil
}

func (m *mockFAQRepo) GetByID(_ context.Context, id uint) (*faq.FAQ, error) {
	if f, ok := m.items[id]; ok {
		return f, nil
	}
	return nil, faq.ErrFAQNotFound
}

func (m *mockFAQRepo) Update(_ context.Context, f *faq.FAQ) error {
	m.items[f.ID()] = f
	return nil
}

func (m *mockFAQRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.items[id]; !ok {
		return faq.ErrFAQNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockFAQRepo) List(context.Context) ([]*faq.FAQ, error) {
	out := make([]*faq.FAQ, 0, len(m.items))
	for _, f := range m.items {
		out = append(out, f)
	}
	return out, nil
}

func (m *mockFAQRepo) ListActiveByLanguage(ctx context.Context, lang string) ([]*faq.FAQ, error) {
	m.requestedLang = lang
	if m.listLangFunc != nil {
		return m.listLangFunc(ctx, lang)
	}
	var out []*faq.FAQ
	for _, f := range m.items {
		if f.IsActive() && f.Language() == lang {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *mockFAQRepo) Count(context.Context) (int64, error) { return int64(len(m.items)), nil }

func newTestService(repo faq.Repository) *Service {
	return NewService(repo, markdown.NewRenderer(), logger.NewNopLogger())
}

func TestService_CreateAndListPublic(t *testing.T) {
	repo := newMockFAQRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.FAQRequest{
		Question: "Fees?", Answer: "No fees <script>x()</script> **ever**", Category: "general", Language: "en",
	})
	require.NoError(t, err)

	hidden := false
	_, err = svc.Create(ctx, dto.FAQRequest{
		Question: "Hidden", Answer: "a", Category: "general", Language: "en", IsActive: &hidden,
	})
	require.NoError(t, err)

	list, err := svc.ListPublic(ctx, "en")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Contains(t, list[0].AnswerHTML, "<strong>ever</strong>")
	assert.NotContains(t, list[0].AnswerHTML, "<script>")
}

func TestService_ListPublicFallsBackToEnglish(t *testing.T) {
	repo := newMockFAQRepo()
	svc := newTestService(repo)

	_, err := svc.ListPublic(context.Background(), "de")
	require.NoError(t, err)
	assert.Equal(t, "en", repo.requestedLang)
}

func TestService_UpdateKeepsVisibilityWhenOmitted(t *testing.T) {
	repo := newMockFAQRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.FAQRequest{Question: "Q", Answer: "A", Category: "c", Language: "fa"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, dto.FAQRequest{Question: "Q2", Answer: "A2", Category: "c", Language: "fa", Order: 3})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
	assert.Equal(t, 3, updated.Order)
}

func TestService_Errors(t *testing.T) {
	svc := newTestService(newMockFAQRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.FAQRequest{Question: "Q", Answer: "A", Category: "c", Language: "xx"})
	assert.True(t, errors.IsValidationError(err))

	_, err = svc.Update(ctx, 42, dto.FAQRequest{Question: "Q", Answer: "A", Category: "c", Language: "en"})
	assert.True(t, errors.IsNotFoundError(err))

	assert.True(t, errors.IsNotFoundError(svc.Delete(ctx, 42)))
}
