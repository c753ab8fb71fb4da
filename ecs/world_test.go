package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/shipscroller/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if w.Len() != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, w.Len())
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("destroying twice should return false")
				}
			}
		})
	}
}

func TestWorldReusesIDsWithNewGeneration(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := w.CreateEntity()
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	w.DestroyEntity(old)

	fresh := w.CreateEntity()
	if fresh.id() != old.id() || fresh.generation() == old.generation() {
		t.Fatalf("expected reused id with new generation, old=%v fresh=%v", old, fresh)
	}
	if _, ok := Get(w, fresh, kind); ok {
		t.Fatalf("fresh entity must not inherit components")
	}
	if err := Add(w, old, kind, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()
	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				if got := w.Query(h2.Kind().ID()); len(got) != 2 {
					t.Fatalf("expected query of 2, got %v", got)
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) && Remove(w, e2, h2.Kind()) },
		},
		{
			name: "mutate_through_pointer",
			setup: func() error {
				return Add(w, e2, h1.Kind(), intPtr(1))
			},
			check: func(t *testing.T) {
				v, _ := Get(w, e2, h1.Kind())
				*v = 42
				again, _ := Get(w, e2, h1.Kind())
				if *again != 42 {
					t.Fatalf("expected stored pointer to be shared, got %d", *again)
				}
			},
			teardown: func() bool { return Remove(w, e2, h1.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	if err := Add[int](w, e, component.ComponentKind[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := Add(w, e, component.NewComponentKind[int](), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	seen := map[Entity]int{}
	ForEach(w, h.Kind(), func(e Entity, v *int) { seen[e] = *v })
	if seen[e1] != 1 || seen[e3] != 3 {
		t.Fatalf("unexpected ForEach result %v", seen)
	}
	if _, ok := seen[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}

	// removing during iteration is allowed
	ForEach(w, h.Kind(), func(e Entity, _ *int) { w.DestroyEntity(e) })
	if w.Len() != 1 {
		t.Fatalf("expected only e2 alive, got %d", w.Len())
	}
}

func TestForEach2AndFirst(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := w.CreateEntity()
				e2 := w.CreateEntity()
				e3 := w.CreateEntity()

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()

				if err := Add(w, e1, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, ka, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, kb, intPtr(3)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e3, kb, intPtr(4)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := w.CreateEntity()
				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, kb, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				w.DestroyEntity(e)

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "first",
			run: func(t *testing.T) {
				w := NewWorld()
				k := component.NewComponentKind[string]()
				if _, _, ok := First(w, k); ok {
					t.Fatalf("expected no entity in empty store")
				}
				e := w.CreateEntity()
				if err := Add(w, e, k, stringPtr("session")); err != nil {
					t.Fatal(err)
				}
				got, v, ok := First(w, k)
				if !ok || got != e || *v != "session" {
					t.Fatalf("unexpected First result %v %v %v", got, v, ok)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

type recordSystem struct {
	name string
	log  *[]string
}

func (r recordSystem) Update(w *World) {
	*r.log = append(*r.log, r.name)
	w.Events().Push(Event{Type: r.name})
}

func TestSchedulerOrderAndEvents(t *testing.T) {
	var log []string
	s := NewScheduler(recordSystem{"a", &log}, nil, recordSystem{"b", &log})
	s.Add(nil)
	s.Add(recordSystem{"c", &log})
	if len(s.Systems()) != 3 {
		t.Fatalf("expected nil systems to be skipped, got %d", len(s.Systems()))
	}

	w := NewWorld()
	s.Update(w)
	if len(log) != 3 || log[0] != "a" || log[1] != "b" || log[2] != "c" {
		t.Fatalf("unexpected order %v", log)
	}
	if got := w.Events().Drain(); len(got) != 3 {
		t.Fatalf("expected 3 events after update, got %d", len(got))
	}

	s.Update(w)
	s.Update(w)
	events := w.Events().Drain()
	if len(events) != 3 {
		t.Fatalf("expected stale events to be dropped, got %d", len(events))
	}
	if w.Events().Drain() != nil {
		t.Fatalf("drain should empty the queue")
	}
}

func TestEntityString(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	if got := e.String(); got != "entity(1@0)" {
		t.Fatalf("unexpected name %q", got)
	}
	w.DestroyEntity(e)
	again := w.CreateEntity()
	if got := again.String(); got != "entity(1@1)" {
		t.Fatalf("unexpected name after reuse %q", got)
	}
	if got := Entity(0).String(); got != "entity(nil)" {
		t.Fatalf("unexpected nil name %q", got)
	}
}
