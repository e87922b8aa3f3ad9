package usecase

import (
	"stakepool/domain"
	"stakepool/interface/exporter"
	"stakepool/interface/repository"

	"go.uber.org/zap"
)

// EventRecorder is the default Emitter: it logs each event, counts it and
// writes it, together with the ledger it resulted in, to the database. A
// failed write never blocks the operation that emitted the event — the
// on-chain effect has already committed at that point.
type EventRecorder struct {
	ledger           *domain.Ledger
	eventRepository  *repository.EventRepository
	ledgerRepository *repository.LedgerRepository
	logger           *zap.Logger
}

func NewEventRecorder(ledger *domain.Ledger,
	eventRepository *repository.EventRepository,
	ledgerRepository *repository.LedgerRepository,
	logger *zap.Logger) *EventRecorder {
	recorder := &EventRecorder{
		ledger:           ledger,
		eventRepository:  eventRepository,
		ledgerRepository: ledgerRepository,
		logger:           logger,
	}
	return recorder
}

func (recorder *EventRecorder) Emit(event domain.Event) {
	recorder.logger.Info("pool event",
		zap.String("name", event.Name()),
		zap.Any("payload", event),
	)
	exporter.IncEventCount(event.Name())

	if err := recorder.eventRepository.Insert(event); err != nil {
		exporter.IncErrorCount()
		recorder.logger.Error("storing event", zap.String("name", event.Name()), zap.Error(err))
	}
	if err := recorder.ledgerRepository.Save(recorder.ledger); err != nil {
		exporter.IncErrorCount()
		recorder.logger.Error("storing ledger", zap.Error(err))
	}
}
