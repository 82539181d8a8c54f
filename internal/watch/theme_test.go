package watch

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestVariantFor_SelectsThemeAssets(t *testing.T) {
	light := VariantFor(ThemeLight)
	dark := VariantFor(ThemeDark)

	if !strings.Contains(light.FailureImage, "light-theme") {
		t.Errorf("expected light failure image, got %q", light.FailureImage)
	}
	if !strings.Contains(dark.FailureImage, "dark-theme") {
		t.Errorf("expected dark failure image, got %q", dark.FailureImage)
	}
	if light.Title != "title-light" || dark.Title != "title-dark" {
		t.Errorf("unexpected title variants: %q %q", light.Title, dark.Title)
	}
	if VariantFor(Theme(42)) != light {
		t.Error("expected unknown theme to fall back to light")
	}
}

func TestToggleStateClass(t *testing.T) {
	if got := toggleStateOf(true).Class(); got != "active" {
		t.Errorf("expected active class, got %q", got)
	}
	if got := toggleStateOf(false).Class(); got != "" {
		t.Errorf("expected no class, got %q", got)
	}
}

func TestThemeFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := themeFromRequest(req); got != ThemeLight {
		t.Errorf("expected light by default, got %s", got)
	}

	req.AddCookie(&http.Cookie{Name: themeCookieName, Value: "dark"})
	if got := themeFromRequest(req); got != ThemeDark {
		t.Errorf("expected dark from cookie, got %s", got)
	}
}

func TestThemeToggle(t *testing.T) {
	if ThemeLight.Toggle() != ThemeDark || ThemeDark.Toggle() != ThemeLight {
		t.Error("expected toggle to flip the theme")
	}
	if ParseTheme("sepia") != ThemeLight {
		t.Error("expected unknown theme names to parse as light")
	}
}
