package store

import (
	"context"
	"fmt"

	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/ent/dailycost"
)

// CostCategory selects the ledger column a billable charge lands in.
type CostCategory string

// Cost categories.
const (
	CostTranscription CostCategory = "transcription"
	CostLLM           CostCategory = "llm"
	CostOther         CostCategory = "other"
)

// GetDailyCost returns the ledger entry for a UTC date key (yyyy-mm-dd).
// A missing entry reads as a zero ledger, not an error.
func (s *Store) GetDailyCost(ctx context.Context, dateKey string) (*ent.DailyCost, error) {
	dc, err := s.client.DailyCost.Get(ctx, dateKey)
	if err != nil {
		if ent.IsNotFound(err) {
			return &ent.DailyCost{ID: dateKey}, nil
		}
		return nil, fmt.Errorf("failed to get daily cost %s: %w", dateKey, err)
	}
	return dc, nil
}

// AddCost increments the ledger for a date by the given amount. Called
// after confirmed billable work; reads by the policy engine see the ledger
// as-of the last commit.
func (s *Store) AddCost(ctx context.Context, dateKey string, category CostCategory, usd float64) error {
	return s.withTx(ctx, func(tx *ent.Tx) error {
		return addCostTx(ctx, tx, dateKey, category, usd)
	})
}

// addCostTx increments the ledger inside an existing transaction, creating
// the day's row on first charge. The row is locked FOR UPDATE so concurrent
// increments serialize; a failed INSERT would abort the whole transaction,
// so existence is checked first.
func addCostTx(ctx context.Context, tx *ent.Tx, dateKey string, category CostCategory, usd float64) error {
	existing, err := tx.DailyCost.Query().
		Where(dailycost.IDEQ(dateKey)).
		ForUpdate().
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to lock daily cost %s: %w", dateKey, err)
	}

	if existing == nil {
		create := tx.DailyCost.Create().
			SetID(dateKey).
			SetTotalUsd(usd)
		switch category {
		case CostTranscription:
			create = create.SetTranscriptionUsd(usd)
		case CostLLM:
			create = create.SetLlmUsd(usd)
		default:
			create = create.SetOtherUsd(usd)
		}
		if err := create.Exec(ctx); err != nil {
			return fmt.Errorf("failed to create daily cost %s: %w", dateKey, err)
		}
		return nil
	}

	update := existing.Update().AddTotalUsd(usd)
	switch category {
	case CostTranscription:
		update = update.AddTranscriptionUsd(usd)
	case CostLLM:
		update = update.AddLlmUsd(usd)
	default:
		update = update.AddOtherUsd(usd)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment daily cost %s: %w", dateKey, err)
	}
	return nil
}
