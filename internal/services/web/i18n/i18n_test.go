package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		want        language.Tag
		wantPersist bool
	}{
		{name: "default", target: "/", want: language.AmericanEnglish},
		{name: "query", target: "/?lang=pt-BR", want: language.BrazilianPortuguese, wantPersist: true},
		{name: "query beats cookie", target: "/?lang=en-US", cookie: "pt-BR", want: language.AmericanEnglish, wantPersist: true},
		{name: "invalid query falls back to cookie", target: "/?lang=@@", cookie: "pt-BR", want: language.BrazilianPortuguese},
		{name: "cookie", target: "/", cookie: "pt-BR", want: language.BrazilianPortuguese},
		{name: "accept language", target: "/", accept: "pt-BR,pt;q=0.9", want: language.BrazilianPortuguese},
		{name: "unsupported accept language", target: "/", accept: "ja-JP", want: language.AmericanEnglish},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			got, persist := ResolveTag(req)
			if got != tc.want {
				t.Fatalf("ResolveTag() tag = %v, want %v", got, tc.want)
			}
			if persist != tc.wantPersist {
				t.Fatalf("ResolveTag() persist = %t, want %t", persist, tc.wantPersist)
			}
		})
	}
}

func TestResolveTagNilRequest(t *testing.T) {
	t.Parallel()

	got, persist := ResolveTag(nil)
	if got != Default() || persist {
		t.Fatalf("ResolveTag(nil) = %v, %t", got, persist)
	}
}

func TestSetLanguageCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	SetLanguageCookie(rr, language.BrazilianPortuguese)
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	if cookies[0].Name != LangCookieName || cookies[0].Value != "pt-BR" {
		t.Fatalf("cookie = %s=%s", cookies[0].Name, cookies[0].Value)
	}
}

func TestPrinterLocalizesDashboardTitle(t *testing.T) {
	t.Parallel()

	if got := Printer(language.AmericanEnglish).Sprintf("page.dashboard"); got != "Dashboard" {
		t.Fatalf("en title = %q", got)
	}
	if got := Printer(language.BrazilianPortuguese).Sprintf("page.dashboard"); got != "Painel" {
		t.Fatalf("pt title = %q", got)
	}
}
