package kafka_test

import (
	"context"
	"testing"
	"time"

	"github.com/Parvathyammu/Payroll-Management/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOutboxRepository_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)

	event := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     "req-1",
		AggregateType: "employee",
		AggregateID:   "7",
		EventType:     "employee_created",
		Topic:         "payroll.employee.lifecycle.v1",
		Payload:       []byte(`{"employee_id":7}`),
		Status:        kafka.OutboxStatusPending,
	}

	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(
			event.ID, event.RequestID, event.AggregateType,
			event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), event)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateInTx(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	repo := kafka.NewOutboxRepository(db).WithTx(tx)

	err = repo.Create(context.Background(), kafka.OutboxEvent{
		ID:            uuid.NewString(),
		AggregateType: "employee",
		AggregateID:   "7",
		EventType:     "employee_deleted",
		Topic:         "payroll.employee.lifecycle.v1",
		Payload:       []byte(`{}`),
		Status:        kafka.OutboxStatusPending,
	})
	assert.NoError(t, err)

	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "coalesce",
	}).AddRow(
		"a2b4", "employee", "7", "employee_created",
		"payroll.employee.lifecycle.v1", []byte(`{}`), kafka.OutboxStatusPending, 0, now,
	)

	mock.ExpectQuery("FROM outbox_events").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
		WillReturnRows(rows)

	events, err := repo.ListPending(context.Background(), 50)

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "employee_created", events[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailedIncrementsRetry(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("a2b4", kafka.OutboxStatusFailed, "broker unreachable").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkFailed(context.Background(), "a2b4", "broker unreachable")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
