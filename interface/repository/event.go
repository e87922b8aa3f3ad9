package repository

import (
	"encoding/json"
	"time"

	"stakepool/domain"

	"github.com/behrang/sqlbatch"
)

const (
	sqlEventInsert = `
	insert into events (
			name, payload, create_time
		)
		values (
			$1, $2::jsonb, $3
		)
`

	sqlEventFindRecent = `
	select
		name, payload, create_time
	from events
	order by create_time desc
	limit $1
`
)

// EventRecord is the durable form of an emitted event.
type EventRecord struct {
	Name       string
	Payload    json.RawMessage
	CreateTime time.Time
}

// EventRepository persists every emitted event; the events table is the
// audit trail of all balance movements and configuration changes.
type EventRepository struct {
	batchHandler BatchHandler
}

func NewEventRepository(db BatchHandler) *EventRepository {
	return &EventRepository{batchHandler: db}
}

func readAllEvents(memo interface{}, scan func(...interface{}) error) (interface{}, error) {
	r := EventRecord{}
	var payload []byte
	err := scan(&r.Name, &payload, &r.CreateTime)
	if err == nil {
		r.Payload = json.RawMessage(payload)
	}

	list := memo.([]EventRecord)
	list = append(list, r)
	return list, err
}

func (repo *EventRepository) Insert(event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = repo.batchHandler.Batch(&BatchOptionNormal, []sqlbatch.Command{
		{
			Query:  sqlEventInsert,
			Args:   []interface{}{event.Name(), payload, time.Now()},
			Affect: 1,
		},
	})
	return err
}

func (repo *EventRepository) FindRecent(limit int) ([]EventRecord, error) {
	results, err := repo.batchHandler.Batch(&BatchOptionNormalReadOnly, []sqlbatch.Command{
		{
			Query:   sqlEventFindRecent,
			Args:    []interface{}{limit},
			Init:    make([]EventRecord, 0),
			ReadAll: readAllEvents,
		},
	})
	result, _ := results[0].([]EventRecord)
	return result, err
}
