package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Event types published by the admin services.
const (
	ClientApproved     = "client.approved"
	AccountUpdated     = "account.updated"
	DataSourceSynced   = "datasource.synced"
	DataSourceSyncFail = "datasource.sync_failed"
	BulkSyncCompleted  = "datasource.bulk_sync_completed"
)

// Event is the payload sent for every workflow outcome.
type Event struct {
	ID           uuid.UUID  `json:"id"`
	Type         string     `json:"type"`
	AccountID    *uuid.UUID `json:"accountId,omitempty"`
	ClientID     *uuid.UUID `json:"clientId,omitempty"`
	DataSourceID *uuid.UUID `json:"dataSourceId,omitempty"`
	Detail       any        `json:"detail,omitempty"`
	Timestamp    int64      `json:"timestamp"`
}

// NewEvent stamps an event of the given type with an ID and the current time.
func NewEvent(eventType string) Event {
	return Event{
		ID:        uuid.New(),
		Type:      eventType,
		Timestamp: time.Now().UTC().Unix(),
	}
}

// Notifier publishes workflow events.
type Notifier interface {
	Notify(event Event) error
	Close()
}

type EventPublisher struct {
	client   pulsar.Client
	producer pulsar.Producer
}

// NewEventPublisher initializes the Pulsar client and producer.
func NewEventPublisher(pulsarURL, topic string) (*EventPublisher, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{
		URL: pulsarURL,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create Pulsar client: %w", err)
	}

	producer, err := client.CreateProducer(pulsar.ProducerOptions{
		Topic: topic,
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("could not create Pulsar producer: %w", err)
	}

	return &EventPublisher{
		client:   client,
		producer: producer,
	}, nil
}

// Notify publishes an event to Pulsar, keyed by its type.
func (p *EventPublisher) Notify(event Event) error {
	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not serialize event payload: %w", err)
	}

	_, err = p.producer.Send(context.Background(), &pulsar.ProducerMessage{
		Key:     event.Type,
		Payload: message,
	})
	if err != nil {
		return fmt.Errorf("could not send event to Pulsar: %w", err)
	}
	return nil
}

// Close closes the Pulsar producer and client.
func (p *EventPublisher) Close() {
	p.producer.Close()
	p.client.Close()
}

// LogNotifier writes events to the log. It is used when no broker is configured.
type LogNotifier struct {
	Log *zerolog.Logger
}

func (n LogNotifier) Notify(event Event) error {
	n.Log.Info().Str("event_type", event.Type).Str("event_id", event.ID.String()).Msg("Event emitted")
	return nil
}

func (n LogNotifier) Close() {}
