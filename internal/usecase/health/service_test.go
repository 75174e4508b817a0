package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockChecker struct {
	err error
}

func (m *mockChecker) HealthCheck(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(map[string]Checker{"categories": &mockChecker{}, "database": &mockChecker{}})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["categories"] != CheckOK || r.Checks["database"] != CheckOK {
		t.Errorf("unexpected checks %v", r.Checks)
	}
}

func TestCheck_OneFails(t *testing.T) {
	svc := New(map[string]Checker{
		"categories": &mockChecker{err: errors.New("connection refused")},
		"database":   &mockChecker{},
	})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["categories"] != CheckError {
		t.Errorf("expected categories %q, got %q", CheckError, r.Checks["categories"])
	}
	if r.Checks["database"] != CheckOK {
		t.Errorf("expected database %q, got %q", CheckOK, r.Checks["database"])
	}
}

func TestCheck_NilSkipped(t *testing.T) {
	svc := New(map[string]Checker{"categories": &mockChecker{}, "database": nil})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if _, ok := r.Checks["database"]; ok {
		t.Error("nil checker should be absent")
	}
}

func TestCheck_Func(t *testing.T) {
	svc := New(map[string]Checker{
		"database": CheckerFunc(func(context.Context) error { return errors.New("down") }),
	})
	if r := svc.Check(context.Background()); r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
}

func TestCheck_NoChecks(t *testing.T) {
	r := New(nil).Check(context.Background())
	if r.Status != Healthy || len(r.Checks) != 0 {
		t.Errorf("unexpected report %+v", r)
	}
}
