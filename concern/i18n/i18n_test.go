package i18n

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/text/language"

	"github.com/globalmentor/csar"
	"github.com/globalmentor/csar/internal/testutil/testlog"
)

func testBundle(t *testing.T) *Bundle {
	t.Helper()
	bundle, err := NewBundle(
		Catalog{Tag: language.English, Messages: map[string]string{
			"greeting": "Hello",
			"farewell": "Goodbye",
		}},
		Catalog{Tag: language.Spanish, Messages: map[string]string{
			"greeting": "Hola",
		}},
	)
	if err != nil {
		t.Fatalf("build bundle: %v", err)
	}
	return bundle
}

func TestNewBundleRequiresCatalogs(t *testing.T) {
	testlog.Start(t)
	if _, err := NewBundle(); !errors.Is(err, ErrNoCatalogs) {
		t.Fatalf("expected ErrNoCatalogs, got %v", err)
	}
}

func TestLocalizeMatchesPreference(t *testing.T) {
	testlog.Start(t)
	bundle := testBundle(t)

	if msg, ok := bundle.Localize("greeting", language.Spanish); !ok || msg != "Hola" {
		t.Fatalf("spanish greeting: %q %v", msg, ok)
	}
	if msg, ok := bundle.Localize("greeting", language.English); !ok || msg != "Hello" {
		t.Fatalf("english greeting: %q %v", msg, ok)
	}
}

func TestLocalizeFallsBackToFirstLanguage(t *testing.T) {
	testlog.Start(t)
	bundle := testBundle(t)

	if msg, ok := bundle.Localize("greeting", language.Japanese); !ok || msg != "Hello" {
		t.Fatalf("unsupported language should fall back: %q %v", msg, ok)
	}
	if msg, ok := bundle.Localize("greeting"); !ok || msg != "Hello" {
		t.Fatalf("no preference should use first language: %q %v", msg, ok)
	}
}

func TestLocalizeMissingKey(t *testing.T) {
	testlog.Start(t)
	bundle := testBundle(t)

	if _, ok := bundle.Localize("farewell", language.Spanish); ok {
		t.Fatal("spanish catalog has no farewell")
	}
	if got := bundle.Message("missing"); got != "missing" {
		t.Fatalf("Message should echo missing keys, got %q", got)
	}
	if got := bundle.Message("greeting", language.Spanish); got != "Hola" {
		t.Fatalf("Message should localize when possible, got %q", got)
	}
}

func TestCatalogMerging(t *testing.T) {
	testlog.Start(t)
	bundle, err := NewBundle(
		Catalog{Tag: language.English, Messages: map[string]string{"greeting": "Hello"}},
		Catalog{Tag: language.English, Messages: map[string]string{"greeting": "Howdy"}},
	)
	if err != nil {
		t.Fatalf("build bundle: %v", err)
	}
	if msg, _ := bundle.Localize("greeting"); msg != "Howdy" {
		t.Fatalf("later catalog entry should win, got %q", msg)
	}
	if len(bundle.Languages()) != 1 {
		t.Fatalf("merged catalogs should share one language, got %v", bundle.Languages())
	}
}

func TestScopedResolution(t *testing.T) {
	testlog.Start(t)
	bundle := testBundle(t)
	scope := csar.NewScope(nil, "i18n", bundle)

	resolved, err := Of(scope)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved != bundle {
		t.Fatal("expected the scoped bundle")
	}

	ctx := csar.ContextWithScope(context.Background(), scope)
	resolved, err = FromContext(ctx)
	if err != nil {
		t.Fatalf("resolve from context failed: %v", err)
	}
	if resolved != bundle {
		t.Fatal("expected the context-bound bundle")
	}
}
