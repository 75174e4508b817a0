package collection

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/kailas-cloud/backoffice/internal/domain"
)

type item struct {
	id    string
	label string
}

func (i item) EntityID() string { return i.id }

type recordingObserver struct {
	mu        sync.Mutex
	sizes     []int
	mutations []string
}

func (o *recordingObserver) ObserveSize(_ string, n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sizes = append(o.sizes, n)
}

func (o *recordingObserver) ObserveMutation(_, op string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	result := "ok"
	if err != nil {
		result = "error"
	}
	o.mutations = append(o.mutations, op+":"+result)
}

func ids(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.id
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCreate_Append(t *testing.T) {
	s := New[item]("products", Append)
	for _, id := range []string{"a", "b", "c"} {
		if err := s.Create(item{id: id}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}
	if got := ids(s.Snapshot()); !equal(got, []string{"a", "b", "c"}) {
		t.Errorf("expected append order, got %v", got)
	}
}

func TestCreate_Prepend(t *testing.T) {
	s := New[item]("sales", Prepend)
	for _, id := range []string{"a", "b", "c"} {
		if err := s.Create(item{id: id}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}
	if got := ids(s.Snapshot()); !equal(got, []string{"c", "b", "a"}) {
		t.Errorf("expected newest first, got %v", got)
	}
}

func TestCreate_DuplicateID(t *testing.T) {
	s := New[item]("products", Append)
	if err := s.Create(item{id: "a"}); err != nil {
		t.Fatal(err)
	}
	err := s.Create(item{id: "a", label: "again"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("store changed on duplicate: len=%d", s.Len())
	}
}

func TestUpdate_ReplacesInPlace(t *testing.T) {
	s := New[item]("products", Append)
	_ = s.Seed([]item{{id: "a"}, {id: "b", label: "old"}, {id: "c"}})

	got, found, err := s.Update("b", func(cur item) (item, error) {
		cur.label = "new"
		return cur, nil
	})
	if err != nil || !found {
		t.Fatalf("update: found=%v err=%v", found, err)
	}
	if got.label != "new" {
		t.Errorf("expected returned label new, got %q", got.label)
	}
	snap := s.Snapshot()
	if !equal(ids(snap), []string{"a", "b", "c"}) {
		t.Errorf("position changed: %v", ids(snap))
	}
	if snap[1].label != "new" {
		t.Errorf("expected stored label new, got %q", snap[1].label)
	}
}

func TestUpdate_MissingIsNoop(t *testing.T) {
	s := New[item]("products", Append)
	_ = s.Seed([]item{{id: "a"}})

	called := false
	_, found, err := s.Update("zzz", func(cur item) (item, error) {
		called = true
		return cur, nil
	})
	if found || err != nil {
		t.Fatalf("expected silent miss, got found=%v err=%v", found, err)
	}
	if called {
		t.Error("fn must not run for a missing id")
	}
}

func TestUpdate_FnErrorLeavesStore(t *testing.T) {
	s := New[item]("products", Append)
	_ = s.Seed([]item{{id: "a", label: "keep"}})

	boom := errors.New("boom")
	_, found, err := s.Update("a", func(cur item) (item, error) {
		cur.label = "lost"
		return cur, boom
	})
	if !found || !errors.Is(err, boom) {
		t.Fatalf("expected boom, got found=%v err=%v", found, err)
	}
	if it, _ := s.Get("a"); it.label != "keep" {
		t.Errorf("store mutated on error: %q", it.label)
	}
}

func TestUpdate_RejectsIDChange(t *testing.T) {
	s := New[item]("products", Append)
	_ = s.Seed([]item{{id: "a"}})

	_, _, err := s.Update("a", func(cur item) (item, error) {
		cur.id = "b"
		return cur, nil
	})
	if !errors.Is(err, domain.ErrInvalidDraft) {
		t.Fatalf("expected ErrInvalidDraft, got %v", err)
	}
	if _, ok := s.Get("a"); !ok {
		t.Error("original entity lost")
	}
}

func TestDelete(t *testing.T) {
	s := New[item]("products", Append)
	_ = s.Seed([]item{{id: "a"}, {id: "b"}, {id: "c"}})

	removed, found := s.Delete("b")
	if !found || removed.id != "b" {
		t.Fatalf("expected b removed, got %v %v", removed, found)
	}
	if got := ids(s.Snapshot()); !equal(got, []string{"a", "c"}) {
		t.Errorf("unexpected remaining ids %v", got)
	}

	if _, found := s.Delete("b"); found {
		t.Error("second delete should be a miss")
	}
	if s.Len() != 2 {
		t.Errorf("expected len 2, got %d", s.Len())
	}
}

func TestSnapshot_IsCopy(t *testing.T) {
	s := New[item]("products", Append)
	_ = s.Seed([]item{{id: "a", label: "x"}})

	snap := s.Snapshot()
	snap[0].label = "mutated"

	if it, _ := s.Get("a"); it.label != "x" {
		t.Errorf("snapshot aliases store: %q", it.label)
	}
}

func TestSeed_RejectsDuplicates(t *testing.T) {
	s := New[item]("products", Append)
	err := s.Seed([]item{{id: "a"}, {id: "a"}})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("store changed on rejected seed")
	}
}

func TestLoad_Success(t *testing.T) {
	obs := &recordingObserver{}
	s := New[item]("categories", Append).WithObserver(obs)
	_ = s.Seed([]item{{id: "stale"}})

	err := s.Load(context.Background(), func(context.Context) ([]item, error) {
		return []item{{id: "1"}, {id: "2"}}, nil
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := ids(s.Snapshot()); !equal(got, []string{"1", "2"}) {
		t.Errorf("expected wholesale replace, got %v", got)
	}
	if obs.sizes[len(obs.sizes)-1] != 2 {
		t.Errorf("expected size 2 observed, got %v", obs.sizes)
	}
}

func TestLoad_FailureLeavesEmpty(t *testing.T) {
	obs := &recordingObserver{}
	s := New[item]("categories", Append).WithObserver(obs)
	calls := 0

	err := s.Load(context.Background(), func(context.Context) ([]item, error) {
		calls++
		return nil, errors.New("connection refused")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("expected exactly one attempt, got %d", calls)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d", s.Len())
	}
	if len(obs.mutations) != 1 || obs.mutations[0] != "load:error" {
		t.Errorf("unexpected observations %v", obs.mutations)
	}
}

func TestBeginEnd(t *testing.T) {
	s := New[item]("categories", Append)
	if s.Submitting() {
		t.Fatal("fresh store must not be submitting")
	}
	if err := s.Begin(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if !s.Submitting() {
		t.Error("expected submitting after Begin")
	}
	if err := s.Begin(); !errors.Is(err, domain.ErrSubmitInProgress) {
		t.Errorf("expected ErrSubmitInProgress, got %v", err)
	}
	s.End()
	if s.Submitting() {
		t.Error("expected idle after End")
	}
	if err := s.Begin(); err != nil {
		t.Errorf("begin after end: %v", err)
	}
}

func TestConcurrentCreates_UniqueIDs(t *testing.T) {
	s := New[item]("transactions", Prepend)

	const n = 200
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := s.Create(item{id: fmt.Sprintf("id-%d", i)}); err != nil {
				t.Errorf("create: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if s.Len() != n {
		t.Fatalf("expected %d items, got %d", n, s.Len())
	}
	seen := map[string]bool{}
	for _, id := range s.IDs() {
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestView(t *testing.T) {
	s := New[item]("items", Append)
	if err := s.Seed([]item{{id: "a"}, {id: "b"}, {id: "c"}}); err != nil {
		t.Fatal(err)
	}
	_ = s.Begin()

	v := s.View(func(items []item) []item { return items[1:] })
	if v.Total != 3 || v.Visible != 2 || !v.Submitting {
		t.Errorf("unexpected view %+v", v)
	}
	if v.Items[0].id != "b" {
		t.Errorf("expected b first, got %s", v.Items[0].id)
	}

	all := s.View(nil)
	if all.Visible != 3 {
		t.Errorf("nil projection should show all, got %d", all.Visible)
	}
}

func TestDeleteThenUpdate_NoOp(t *testing.T) {
	s := New[item]("items", Append)
	if err := s.Seed([]item{{id: "1", label: "a"}, {id: "2", label: "b"}}); err != nil {
		t.Fatal(err)
	}

	if _, found := s.Delete("1"); !found {
		t.Fatal("expected delete to find 1")
	}
	after := s.Snapshot()

	_, found, err := s.Update("1", func(cur item) (item, error) {
		cur.label = "patched"
		return cur, nil
	})
	if found || err != nil {
		t.Fatalf("expected not found without error, got found=%v err=%v", found, err)
	}
	if !reflect.DeepEqual(s.Snapshot(), after) {
		t.Errorf("store changed: %v -> %v", after, s.Snapshot())
	}
}
