package mappers

import (
	"fmt"

	"github.com/avestaexchange/avesta/internal/domain/exchangerate"
	"github.com/avestaexchange/avesta/internal/infrastructure/persistence/models"
)

// MarkupMapper converts between markup entities and rows.
type MarkupMapper interface {
	ToEntity(model *models.MarkupModel) (*exchangerate.Markup, error)
	ToModel(entity *exchangerate.Markup) *models.MarkupModel
	ToEntities(models []*models.MarkupModel) ([]*exchangerate.Markup, error)
}

type MarkupMapperImpl struct{}

func NewMarkupMapper() MarkupMapper {
	return &MarkupMapperImpl{}
}

func (m *MarkupMapperImpl) ToEntity(model *models.MarkupModel) (*exchangerate.Markup, error) {
	if model == nil {
		return nil, nil
	}

	base, err := exchangerate.ParseCurrency(model.BaseCurrency)
	if err != nil {
		return nil, fmt.Errorf("markup %d: %w", model.ID, err)
	}
	quote, err := exchangerate.ParseCurrency(model.QuoteCurrency)
	if err != nil {
		return nil, fmt.Errorf("markup %d: %w", model.ID, err)
	}

	return exchangerate.ReconstructMarkup(
		model.ID,
		base, quote,
		model.BaseRate, model.BuyMarkup, model.SellMarkup, model.BuyRate, model.SellRate,
		model.IsActive,
		model.CreatedAt, model.UpdatedAt,
	), nil
}

func (m *MarkupMapperImpl) ToModel(entity *exchangerate.Markup) *models.MarkupModel {
	if entity == nil {
		return nil
	}
	return &models.MarkupModel{
		ID:            entity.ID(),
		Pair:          entity.Pair(),
		BaseCurrency:  string(entity.BaseCurrency()),
		QuoteCurrency: string(entity.QuoteCurrency()),
		BaseRate:      entity.BaseRate(),
		BuyMarkup:     entity.BuyMarkup(),
		SellMarkup:    entity.SellMarkup(),
		BuyRate:       entity.BuyRate(),
		SellRate:      entity.SellRate(),
		IsActive:      entity.IsActive(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

func (m *MarkupMapperImpl) ToEntities(rows []*models.MarkupModel) ([]*exchangerate.Markup, error) {
	out := make([]*exchangerate.Markup, 0, len(rows))
	for _, row := range rows {
		e, err := m.ToEntity(row)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
