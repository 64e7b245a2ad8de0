package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/creomotion/agency-api/internal/core/domain"
	"github.com/creomotion/agency-api/internal/core/ports"
)

type recordingService struct {
	mu       sync.Mutex
	recorded []ports.ActivityInput
	err      error
	done     chan struct{}
}

func (s *recordingService) Record(ctx context.Context, input ports.ActivityInput) error {
	s.mu.Lock()
	s.recorded = append(s.recorded, input)
	s.mu.Unlock()
	if s.done != nil {
		s.done <- struct{}{}
	}
	return s.err
}

func (s *recordingService) Recent(ctx context.Context, limit int) ([]*domain.Activity, error) {
	return nil, nil
}

func TestDispatcher_DeliversToService(t *testing.T) {
	svc := &recordingService{done: make(chan struct{}, 1)}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.ActivityInput{ActorID: "u1", Action: "user.created", Entity: "user", EntityID: "u2"})

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("activity was not delivered")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.recorded) != 1 || svc.recorded[0].Action != "user.created" {
		t.Fatalf("unexpected recorded set: %+v", svc.recorded)
	}
}

func TestDispatcher_SameActorSameShard(t *testing.T) {
	d := NewDispatcher(4, &recordingService{}, zerolog.Nop())

	first := d.shardIndex("actor-42")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("actor-42"); got != first {
			t.Fatalf("shard not stable: %d vs %d", got, first)
		}
	}
}

func TestDispatcher_DefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}

// A failing service must not take the worker down.
func TestDispatcher_SurvivesRecordErrors(t *testing.T) {
	svc := &recordingService{err: errors.New("mongo down"), done: make(chan struct{}, 2)}
	d := NewDispatcher(1, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.ActivityInput{ActorID: "u1", Action: "client.created"})
	d.Enqueue(ports.ActivityInput{ActorID: "u1", Action: "client.updated"})

	for i := 0; i < 2; i++ {
		select {
		case <-svc.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("worker stopped after error")
		}
	}
}
