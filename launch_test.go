package csar

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/globalmentor/csar/internal/testutil/testlog"
)

func TestGoResolvesBoundConcerns(t *testing.T) {
	testlog.Start(t)
	fallback := newEnvironment(map[string]string{"test": "default"})
	if _, err := RegisterDefaultConcern(fallback); err != nil {
		t.Fatalf("register default failed: %v", err)
	}
	t.Cleanup(func() { UnregisterDefaultConcern(TypeOf[*environment]()) })

	results := make(map[string]string, 3)
	units := make(map[string]*Unit, 3)
	resultCh := make(chan [2]string, 3)
	for _, name := range []string{"foo", "bar", "foobar"} {
		units[name] = Go(context.Background(), name, func(ctx context.Context) error {
			env, err := ConcernFromContext[*environment](ctx)
			if err != nil {
				return err
			}
			resultCh <- [2]string{name, env.get("test")}
			return nil
		}, newEnvironment(map[string]string{"test": name}))
	}
	for name, unit := range units {
		if err := unit.Wait(); err != nil {
			t.Fatalf("unit %s failed: %v", name, err)
		}
	}
	close(resultCh)
	for pair := range resultCh {
		results[pair[0]] = pair[1]
	}
	for _, name := range []string{"foo", "bar", "foobar"} {
		if results[name] != name {
			t.Fatalf("unit %s resolved %q, want its own binding", name, results[name])
		}
	}
}

func TestGoFallsBackToDefaults(t *testing.T) {
	testlog.Start(t)
	fallback := newEnvironment(map[string]string{"test": "default"})
	if _, err := RegisterDefaultConcern(fallback); err != nil {
		t.Fatalf("register default failed: %v", err)
	}
	t.Cleanup(func() { UnregisterDefaultConcern(TypeOf[*environment]()) })

	unit := Go(context.Background(), "bare", func(ctx context.Context) error {
		env, err := ConcernFromContext[*environment](ctx)
		if err != nil {
			return err
		}
		if env.get("test") != "default" {
			t.Errorf("expected global default, got %q", env.get("test"))
		}
		return nil
	})
	if err := unit.Wait(); err != nil {
		t.Fatalf("unit failed: %v", err)
	}
}

func TestGoScopeParentage(t *testing.T) {
	testlog.Start(t)
	parent := NewScope(nil, "parent")
	ctx := ContextWithScope(context.Background(), parent)

	unit := Go(ctx, "child", func(ctx context.Context) error {
		scope, ok := ScopeFromContext(ctx)
		if !ok {
			return errors.New("no scope in unit context")
		}
		if scope.Parent() != parent {
			return errors.New("unit scope not parented to caller scope")
		}
		return nil
	})
	if err := unit.Wait(); err != nil {
		t.Fatal(err)
	}
	if unit.Scope().Parent() != parent {
		t.Fatal("handle should expose the unit scope")
	}
	if unit.ID() == "" {
		t.Fatal("unit ID must not be empty")
	}
	select {
	case <-unit.Done():
	default:
		t.Fatal("done channel should be closed after Wait")
	}
}

func TestGoPropagatesError(t *testing.T) {
	testlog.Start(t)
	boom := errors.New("boom")
	unit := Go(context.Background(), "failing", func(context.Context) error {
		return boom
	})
	if err := unit.Wait(); !errors.Is(err, boom) {
		t.Fatalf("expected body error, got %v", err)
	}
}

func TestGoRecoversPanic(t *testing.T) {
	testlog.Start(t)
	unit := Go(context.Background(), "panicking", func(context.Context) error {
		panic("kaboom")
	})
	err := unit.Wait()
	var panicErr *PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("expected *PanicError, got %v", err)
	}
	if panicErr.Value != "kaboom" || panicErr.Unit != "panicking" {
		t.Fatalf("unexpected panic details: %+v", panicErr)
	}
	if len(panicErr.Stack) == 0 {
		t.Fatal("panic stack missing")
	}
	if !strings.Contains(panicErr.Error(), "kaboom") {
		t.Fatalf("error should name the panic value: %v", panicErr)
	}
}

func TestGroupBindsEachUnit(t *testing.T) {
	testlog.Start(t)
	group := NewGroup(context.Background())
	resultCh := make(chan [2]string, 3)
	for _, name := range []string{"foo", "bar", "foobar"} {
		group.Go(name, func(ctx context.Context) error {
			env, err := ConcernFromContext[*environment](ctx)
			if err != nil {
				return err
			}
			resultCh <- [2]string{name, env.get("test")}
			return nil
		}, newEnvironment(map[string]string{"test": name}))
	}
	if err := group.Wait(); err != nil {
		t.Fatalf("group failed: %v", err)
	}
	close(resultCh)
	for pair := range resultCh {
		if pair[0] != pair[1] {
			t.Fatalf("unit %s resolved %q", pair[0], pair[1])
		}
	}
}

func TestGroupReportsFirstError(t *testing.T) {
	testlog.Start(t)
	boom := errors.New("boom")
	group := NewGroup(context.Background())
	group.Go("ok", func(context.Context) error { return nil })
	group.Go("failing", func(context.Context) error { return boom })
	if err := group.Wait(); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
