package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/school_locator/internal/config"
	"github.com/shenikar/school_locator/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func testEvent() WebhookEvent {
	return WebhookEvent{
		Type: EventSchoolCreated,
		School: &models.School{
			ID:        uuid.New(),
			Name:      "Greenwood High",
			Address:   "12 Park Lane",
			Latitude:  12.97,
			Longitude: 77.59,
		},
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestPublish_PushesToQueue(t *testing.T) {
	mr, client := newTestRedis(t)
	publisher := NewRedisWebhookPublisher(client)
	event := testEvent()

	err := publisher.Publish(context.Background(), event)

	require.NoError(t, err)
	items, err := mr.List(webhookQueueKey)
	require.NoError(t, err)
	require.Len(t, items, 1)

	var got WebhookEvent
	require.NoError(t, json.Unmarshal([]byte(items[0]), &got))
	assert.Equal(t, EventSchoolCreated, got.Type)
	assert.Equal(t, event.School.ID, got.School.ID)
	assert.True(t, event.Timestamp.Equal(got.Timestamp))
}

func TestPublish_RedisDown(t *testing.T) {
	mr, client := newTestRedis(t)
	mr.Close()

	err := NewRedisWebhookPublisher(client).Publish(context.Background(), testEvent())

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to publish webhook event")
}

func TestDeliver_NotConfigured(t *testing.T) {
	_, client := newTestRedis(t)
	worker := NewWebhookWorker(client, newTestLogger(), &config.Config{})

	err := worker.deliver(context.Background(), testEvent(), "{}")

	assert.ErrorIs(t, err, ErrWebhookNotConfigured)
}

func TestDeliver_SignsPayload(t *testing.T) {
	_, client := newTestRedis(t)
	payload := `{"type":"school.created"}`

	var gotSignature, gotEvent, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get(signatureHeader)
		gotEvent = r.Header.Get(eventHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cfg := &config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := NewWebhookWorker(client, newTestLogger(), cfg)

	err := worker.deliver(context.Background(), testEvent(), payload)

	require.NoError(t, err)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
	assert.Equal(t, EventSchoolCreated, gotEvent)
}

func TestDeliver_RetriesOnServerError(t *testing.T) {
	_, client := newTestRedis(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := &config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := NewWebhookWorker(client, newTestLogger(), cfg)

	err := worker.deliver(context.Background(), testEvent(), "{}")

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_GivesUp(t *testing.T) {
	_, client := newTestRedis(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	cfg := &config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := NewWebhookWorker(client, newTestLogger(), cfg)

	err := worker.deliver(context.Background(), testEvent(), "{}")

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed after 2 attempts")
	assert.ErrorContains(t, err, "status 502")
	assert.Equal(t, int32(2), calls.Load())
}

func TestRun_DeliversQueuedEvent(t *testing.T) {
	_, client := newTestRedis(t)

	received := make(chan WebhookEvent, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var event WebhookEvent
		_ = json.NewDecoder(r.Body).Decode(&event)
		received <- event
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := &config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 1,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := NewWebhookWorker(client, newTestLogger(), cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	event := testEvent()
	require.NoError(t, NewRedisWebhookPublisher(client).Publish(ctx, event))

	select {
	case got := <-received:
		assert.Equal(t, event.School.ID, got.School.ID)
	case <-time.After(5 * time.Second):
		t.Fatal("webhook was not delivered")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
}
