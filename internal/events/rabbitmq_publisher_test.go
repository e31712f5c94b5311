package events_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/abrar2030/FinovaBank/internal/db/memory"
	"github.com/abrar2030/FinovaBank/internal/domain"
	"github.com/abrar2030/FinovaBank/internal/events"
)

func TestRoutingKey(t *testing.T) {
	tests := []struct {
		prefix    string
		eventType string
		expected  string
	}{
		{"bank.accounts", domain.EventTransactionApplied, "bank.accounts.transaction.applied"},
		{"bank.accounts", domain.EventAccountFrozen, "bank.accounts.account.frozen"},
		{"", domain.EventAccountCreated, "account.created"},
	}

	for _, tt := range tests {
		if got := events.RoutingKey(tt.prefix, tt.eventType); got != tt.expected {
			t.Errorf("RoutingKey(%q, %q) = %q, want %q", tt.prefix, tt.eventType, got, tt.expected)
		}
	}
}

// TestPublisherIntegration spins up RabbitMQ, wires the publisher into a
// ledger and checks that committed mutations arrive on the exchange.
func TestPublisherIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	rabbitContainer, rabbitURL := startRabbitMQContainer(t, ctx)
	defer func() {
		if err := rabbitContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate rabbitmq container: %v", err)
		}
	}()

	const (
		exchange = "bank.accounts"
		prefix   = "bank.accounts"
	)
	publisher, err := events.NewRabbitMQPublisher(rabbitURL, exchange, prefix)
	if err != nil {
		t.Fatalf("failed to create rabbitmq publisher: %v", err)
	}
	defer publisher.Close()

	eventChan := make(chan map[string]interface{}, 4)
	stopConsumer := startEventConsumer(t, rabbitURL, exchange, prefix+".#", eventChan)
	defer stopConsumer()

	ledger, err := domain.NewLedger(memory.NewAccountStore(), domain.Options{
		Publisher: publisher,
		Logger:    slog.New(slog.DiscardHandler),
	})
	if err != nil {
		t.Fatalf("failed to create ledger: %v", err)
	}
	actorCtx := domain.WithActor(ctx, "teller-1")

	account, err := ledger.CreateAccount(actorCtx, domain.CreateAccountRequest{
		CustomerID:     "CUST-1",
		AccountName:    "Everyday",
		AccountType:    domain.AccountTypeChecking,
		InitialDeposit: decimal.RequireFromString("100.00"),
	})
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	created := waitForEvent(t, eventChan)
	if created["eventType"] != domain.EventAccountCreated {
		t.Errorf("expected eventType %s, got %v", domain.EventAccountCreated, created["eventType"])
	}
	if created["accountId"] != account.ID.String() {
		t.Errorf("expected accountId %s, got %v", account.ID, created["accountId"])
	}

	if _, err := ledger.ApplyTransaction(actorCtx, domain.TransactionRequest{
		AccountID: account.ID,
		Amount:    decimal.RequireFromString("40.00"),
		Kind:      domain.TransactionKindDebit,
		Reference: "INV-1",
	}); err != nil {
		t.Fatalf("ApplyTransaction failed: %v", err)
	}

	applied := waitForEvent(t, eventChan)
	if applied["eventType"] != domain.EventTransactionApplied {
		t.Errorf("expected eventType %s, got %v", domain.EventTransactionApplied, applied["eventType"])
	}
	if applied["amount"] != "40.00" || applied["balance"] != "60.00" {
		t.Errorf("unexpected amounts in event: %v", applied)
	}
	if applied["actor"] != "teller-1" || applied["reference"] != "INV-1" {
		t.Errorf("unexpected actor or reference in event: %v", applied)
	}
}

func waitForEvent(t *testing.T, eventChan <-chan map[string]interface{}) map[string]interface{} {
	t.Helper()
	select {
	case event := <-eventChan:
		return event
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for event to be published")
		return nil
	}
}

// startRabbitMQContainer starts a RabbitMQ testcontainer and returns the AMQP URL.
func startRabbitMQContainer(t *testing.T, ctx context.Context) (testcontainers.Container, string) {
	req := testcontainers.ContainerRequest{
		Image:        "rabbitmq:3-management",
		ExposedPorts: []string{"5672/tcp", "15672/tcp"},
		Env: map[string]string{
			"RABBITMQ_DEFAULT_USER": "guest",
			"RABBITMQ_DEFAULT_PASS": "guest",
		},
		WaitingFor: wait.ForLog("Server startup complete"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start rabbitmq container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get rabbitmq host: %v", err)
	}

	port, err := container.MappedPort(ctx, "5672")
	if err != nil {
		t.Fatalf("failed to get rabbitmq port: %v", err)
	}

	return container, fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())
}

// startEventConsumer binds an exclusive queue to the exchange and forwards
// decoded messages to eventChan.
func startEventConsumer(t *testing.T, rabbitURL, exchange, bindingKey string, eventChan chan<- map[string]interface{}) func() {
	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		t.Fatalf("failed to connect to rabbitmq: %v", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		t.Fatalf("failed to open channel: %v", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		t.Fatalf("failed to declare exchange: %v", err)
	}

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		t.Fatalf("failed to declare queue: %v", err)
	}

	if err := ch.QueueBind(q.Name, bindingKey, exchange, false, nil); err != nil {
		ch.Close()
		conn.Close()
		t.Fatalf("failed to bind queue: %v", err)
	}

	msgs, err := ch.Consume(q.Name, "", true, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		t.Fatalf("failed to start consuming: %v", err)
	}

	go func() {
		for msg := range msgs {
			var event map[string]interface{}
			if err := json.Unmarshal(msg.Body, &event); err != nil {
				t.Logf("failed to unmarshal event: %v", err)
				continue
			}
			eventChan <- event
		}
	}()

	return func() {
		ch.Close()
		conn.Close()
	}
}
