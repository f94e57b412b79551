package component

import (
	"context"
	"fmt"
	"testing"
)

// mockComponent implements Component for testing.
type mockComponent struct {
	name       string
	startErr   error
	stopErr    error
	health     Health
	startOrder *[]string
	stopOrder  *[]string
}

func (m *mockComponent) Name() string { return m.name }
func (m *mockComponent) Start(ctx context.Context) error {
	if m.startOrder != nil {
		*m.startOrder = append(*m.startOrder, m.name)
	}
	return m.startErr
}
func (m *mockComponent) Stop(ctx context.Context) error {
	if m.stopOrder != nil {
		*m.stopOrder = append(*m.stopOrder, m.name)
	}
	return m.stopErr
}
func (m *mockComponent) Health(ctx context.Context) Health {
	return m.health
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	c := &mockComponent{name: "redis", health: Health{Name: "redis", Status: StatusHealthy}}

	if err := r.Register(c); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if r.Get("redis") != c {
		t.Error("expected Get to return the registered component")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockComponent{name: "redis"})

	if err := r.Register(&mockComponent{name: "redis"}); err == nil {
		t.Error("expected error for duplicate registration")
	}
}

func TestStartAllOrder(t *testing.T) {
	var order []string
	r := NewRegistry()
	r.Register(&mockComponent{name: "redis", startOrder: &order})
	r.Register(&mockComponent{name: "server", startOrder: &order})

	if err := r.StartAll(context.Background()); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}

	if len(order) != 2 || order[0] != "redis" || order[1] != "server" {
		t.Errorf("expected registration order, got %v", order)
	}
}

func TestStartAllStopsAtFirstFailure(t *testing.T) {
	var order []string
	r := NewRegistry()
	r.Register(&mockComponent{name: "redis", startErr: fmt.Errorf("refused"), startOrder: &order})
	r.Register(&mockComponent{name: "server", startOrder: &order})

	err := r.StartAll(context.Background())
	if err == nil {
		t.Fatal("expected StartAll to fail")
	}
	if len(order) != 1 {
		t.Errorf("expected later components to stay unstarted, got %v", order)
	}
}

func TestStopAllReverseOrder(t *testing.T) {
	var order []string
	r := NewRegistry()
	r.Register(&mockComponent{name: "redis", stopOrder: &order})
	r.Register(&mockComponent{name: "server", stopOrder: &order})

	if err := r.StartAll(context.Background()); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}

	if len(order) != 2 || order[0] != "server" || order[1] != "redis" {
		t.Errorf("expected reverse order, got %v", order)
	}
}

func TestStopAllSkipsUnstarted(t *testing.T) {
	var order []string
	r := NewRegistry()
	r.Register(&mockComponent{name: "redis", stopOrder: &order})

	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}
	if len(order) != 0 {
		t.Errorf("expected no stops for unstarted components, got %v", order)
	}
}

func TestHealthAll(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockComponent{name: "redis", health: Health{Name: "redis", Status: StatusHealthy}})
	r.Register(&mockComponent{name: "server", health: Health{Name: "server", Status: StatusUnhealthy, Message: "not listening"}})

	results := r.HealthAll(context.Background())
	if len(results) != 2 {
		t.Fatalf("expected 2 health results, got %d", len(results))
	}
	if results[0].Status != StatusHealthy {
		t.Errorf("expected redis healthy, got %s", results[0].Status)
	}
	if results[1].Status != StatusUnhealthy {
		t.Errorf("expected server unhealthy, got %s", results[1].Status)
	}
}

func TestGetMissing(t *testing.T) {
	r := NewRegistry()
	if r.Get("nope") != nil {
		t.Error("expected nil for unknown component")
	}
}
