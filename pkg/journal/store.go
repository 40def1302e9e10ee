// Package journal keeps the tasting journal: validated writes of tasting
// entries and reconciliation of a session's buffered entries against the
// persisted journal.
package journal

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BeerDiary/pkg/model"
	"droscher.com/BeerDiary/pkg/repository"
)

const (
	MinScore = 0.0
	MaxScore = 5.0

	scoreCount = 5
)

var (
	ErrValidation = errors.New("invalid tasting entry")
	ErrStorage    = errors.New("journal storage error")
)

var scoreNames = [scoreCount]string{"look", "smell", "taste", "feel", "overall"}

// Removal reports the key a delete was applied to so callers can drop it from their own buffers.
type Removal struct {
	Key  model.TastingKey
	Rows int64
}

type Option func(*Store)

// WithClock replaces the clock used to default TastedOn.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

type Store struct {
	repository repository.JournalRepository
	logger     *zap.Logger
	now        func() time.Time
}

func NewStore(repo repository.JournalRepository, logger *zap.Logger, options ...Option) *Store {
	store := &Store{repository: repo, logger: logger, now: time.Now}

	for _, option := range options {
		option(store)
	}

	return store
}

// Prepare validates entry, defaults TastedOn to today and computes AverageRating.
func (s *Store) Prepare(entry model.TastingEntry) (model.TastingEntry, error) {
	if len(strings.TrimSpace(entry.UserID)) == 0 {
		return entry, fmt.Errorf("%w: user_id is required", ErrValidation)
	}

	if len(strings.TrimSpace(entry.BeerID)) == 0 {
		return entry, fmt.Errorf("%w: beer_id is required", ErrValidation)
	}

	scores := entry.Scores()
	for index, score := range scores {
		if math.IsNaN(score) || math.IsInf(score, 0) || score < MinScore || score > MaxScore {
			return entry, fmt.Errorf("%w: %s must be between %.1f and %.1f, got %v", ErrValidation, scoreNames[index], MinScore, MaxScore, score)
		}
	}

	if len(entry.TastedOn) == 0 {
		entry.TastedOn = s.now().Format(model.DateLayout)
	} else if _, err := time.Parse(model.DateLayout, entry.TastedOn); err != nil {
		return entry, fmt.Errorf("%w: tasted_on %q is not a %s date", ErrValidation, entry.TastedOn, model.DateLayout)
	}

	entry.AverageRating = AverageRating(scores)

	return entry, nil
}

// AverageRating is the mean of the sub-scores rounded to two decimals.
func AverageRating(scores [scoreCount]float64) float64 {
	var sum float64

	for _, score := range scores {
		sum += score
	}

	return math.Round(sum/scoreCount*100) / 100 //nolint:mnd // two decimal places
}

// RecordTasting appends entry to the journal without checking for an existing key.
func (s *Store) RecordTasting(ctx context.Context, entry model.TastingEntry) (*model.TastingEntry, error) {
	prepared, err := s.Prepare(entry)
	if err != nil {
		s.logger.Warn("rejected tasting", zap.String("beer_id", entry.BeerID), zap.Error(err))

		return nil, err
	}

	saved, err := s.repository.AddTasting(ctx, prepared)
	if err != nil {
		s.logger.Error("error recording tasting", zap.Stringer("key", prepared.Key()), zap.Error(err))

		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return saved, nil
}

func (s *Store) ListTastings(ctx context.Context, userID string) ([]*model.TastingEntry, error) {
	entries, err := s.repository.GetTastingsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if entries == nil {
		entries = []*model.TastingEntry{}
	}

	return entries, nil
}

// Reconcile persists every buffered entry whose key is not yet stored for
// userID and returns how many were written. Candidates are handled one at a
// time: a failing candidate is reported in the returned error but neither
// undoes earlier writes nor stops later ones. When several candidates share a
// key the first one wins.
func (s *Store) Reconcile(ctx context.Context, buffer []model.TastingEntry, userID string) (int, error) {
	var (
		synced int
		errs   error
	)

	seen := make(map[model.TastingKey]struct{}, len(buffer))

	for index, candidate := range buffer {
		candidate.ID = 0
		candidate.UserID = userID

		prepared, err := s.Prepare(candidate)
		if err != nil {
			multierr.AppendInto(&errs, fmt.Errorf("candidate %d (%s): %w", index, candidate.BeerID, err))

			continue
		}

		key := prepared.Key()
		if _, ok := seen[key]; ok {
			s.logger.Debug("skipping duplicate candidate", zap.Stringer("key", key))

			continue
		}

		_, created, err := s.repository.AddTastingIfAbsent(ctx, prepared)
		if err != nil {
			s.logger.Error("error reconciling tasting", zap.Stringer("key", key), zap.Error(err))
			multierr.AppendInto(&errs, fmt.Errorf("candidate %d (%s): %w: %w", index, key, ErrStorage, err))

			continue
		}

		seen[key] = struct{}{}

		if created {
			synced++
		}
	}

	s.logger.Info("reconciled session journal", zap.String("user_id", userID),
		zap.Int("candidates", len(buffer)), zap.Int("synced", synced), zap.Error(errs))

	return synced, errs
}

func (s *Store) DeleteTasting(ctx context.Context, key model.TastingKey) (Removal, error) {
	rows, err := s.repository.DeleteTastings(ctx, key)
	if err != nil {
		s.logger.Error("error deleting tasting", zap.Stringer("key", key), zap.Error(err))

		return Removal{Key: key}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return Removal{Key: key, Rows: rows}, nil
}
