package application

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/bnema/gamelan-harmony/internal/i18n"
	"github.com/bnema/gamelan-harmony/internal/observability"
	"github.com/bnema/gamelan-harmony/internal/ports"
	"github.com/bnema/gamelan-harmony/internal/prefs"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HistoryService gates consultations behind a session and records each one
// started.
type HistoryService struct {
	store     *prefs.Store
	session   *SessionManager
	catalog   *CatalogService
	clock     ports.Clock
	notifier  ports.Notifier
	navigator ports.Navigator
	messages  Messages
	logger    *zap.Logger
	newID     func() string
}

func NewHistoryService(
	store *prefs.Store,
	session *SessionManager,
	catalog *CatalogService,
	clock ports.Clock,
	notifier ports.Notifier,
	navigator ports.Navigator,
	messages Messages,
	logger *zap.Logger,
) *HistoryService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &HistoryService{
		store:     store,
		session:   session,
		catalog:   catalog,
		clock:     clock,
		notifier:  notifier,
		navigator: navigator,
		messages:  messages,
		logger:    observability.OrNop(logger).Named("history"),
		newID:     func() string { return uuid.NewString() },
	}
}

type consultationRecord struct {
	ID            string `json:"id"`
	DestinationID string `json:"destinationId"`
	CreatedAt     string `json:"createdAt"`
}

// StartConsultation opens a consultation for destinationID. Anonymous users
// are told to sign in and sent to the login screen.
func (s *HistoryService) StartConsultation(ctx context.Context, destinationID string) (domain.Consultation, error) {
	if !s.session.IsAuthenticated() {
		s.notifier.Notify(ctx, s.messages.Text(i18n.LoginRequired), ports.SeverityDestructive)
		s.navigator.GoTo(ctx, ports.RouteLogin)
		return domain.Consultation{}, domain.ErrNotAuthenticated
	}

	destination, err := s.catalog.Get(destinationID)
	if err != nil {
		return domain.Consultation{}, err
	}

	consultation := domain.Consultation{
		ID:            s.newID(),
		DestinationID: destination.ID,
		CreatedAt:     s.clock.Now().UTC().Truncate(time.Millisecond),
	}

	records := s.load(ctx)
	records = append(records, consultationRecord{
		ID:            consultation.ID,
		DestinationID: consultation.DestinationID,
		CreatedAt:     consultation.CreatedAt.Format(createdAtLayout),
	})
	s.save(ctx, records)

	s.navigator.GoTo(ctx, ports.RouteConsultation)
	return consultation, nil
}

// History lists recorded consultations, newest first.
func (s *HistoryService) History(ctx context.Context) []domain.Consultation {
	records := s.load(ctx)

	consultations := make([]domain.Consultation, 0, len(records))
	for _, record := range records {
		createdAt, err := time.Parse(time.RFC3339Nano, record.CreatedAt)
		if err != nil {
			s.logger.Debug("skipping consultation with bad timestamp", zap.String("id", record.ID), zap.Error(err))
			continue
		}
		consultations = append(consultations, domain.Consultation{
			ID:            record.ID,
			DestinationID: record.DestinationID,
			CreatedAt:     createdAt.UTC(),
		})
	}

	slices.SortStableFunc(consultations, func(a, b domain.Consultation) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return consultations
}

func (s *HistoryService) Count(ctx context.Context) int {
	return len(s.History(ctx))
}

func (s *HistoryService) Clear(ctx context.Context) {
	s.store.Remove(ctx, prefs.KeyHistory)
}

func (s *HistoryService) load(ctx context.Context) []consultationRecord {
	raw, ok := s.store.Get(ctx, prefs.KeyHistory)
	if !ok {
		return nil
	}

	var records []consultationRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.logger.Debug("discarding persisted history", zap.Error(err))
		s.store.Remove(ctx, prefs.KeyHistory)
		return nil
	}

	return records
}

func (s *HistoryService) save(ctx context.Context, records []consultationRecord) {
	data, err := json.Marshal(records)
	if err != nil {
		s.logger.Warn("encode history", zap.Error(fmt.Errorf("marshal %d consultations: %w", len(records), err)))
		return
	}

	s.store.Set(ctx, prefs.KeyHistory, string(data))
}
