package i18n

import "testing"

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog("en-US")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	if fallback := GetCatalog("missing-locale"); fallback != base {
		t.Fatal("expected fallback to en-US catalog")
	}
	if empty := GetCatalog(""); empty != base {
		t.Fatal("expected empty locale to resolve to en-US")
	}
}

func TestGetCatalogMatchesAcceptLanguage(t *testing.T) {
	tests := []struct {
		requested string
		want      string
	}{
		{requested: "pt-BR", want: "pt-BR"},
		{requested: "pt", want: "pt-BR"},
		{requested: "en-GB", want: "en-US"},
		{requested: "ja", want: "en-US"},
	}
	for _, tc := range tests {
		if got := GetCatalog(tc.requested).Locale(); got != tc.want {
			t.Fatalf("GetCatalog(%q).Locale() = %q, want %q", tc.requested, got, tc.want)
		}
	}
}

func TestCatalogsCoverSameCodes(t *testing.T) {
	for code := range enUSCatalog.messages {
		if _, ok := ptBRCatalog.messages[code]; !ok {
			t.Fatalf("pt-BR catalog is missing %s", code)
		}
	}
	if len(enUSCatalog.messages) != len(ptBRCatalog.messages) {
		t.Fatalf("catalog sizes differ: en-US=%d pt-BR=%d", len(enUSCatalog.messages), len(ptBRCatalog.messages))
	}
}

func TestFormatRendersMetadata(t *testing.T) {
	msg := GetCatalog("en-US").Format(CodeAssetIndexOutOfRange, map[string]string{"Index": "3", "Count": "2"})
	if msg != "Index 3 is out of range (asset count is 2)" {
		t.Fatalf("message = %q", msg)
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "hello {{.Name}}",
	})

	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if cat.Format("code", nil) != "hello <no value>" {
		t.Fatal("expected template to render missing metadata")
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "{{ if .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ if .Name }}" {
		t.Fatal("expected template fallback on parse error")
	}
}

func TestRegisterCatalog(t *testing.T) {
	custom := NewCatalog("custom", map[Code]string{"code": "ok"})
	RegisterCatalog("custom", custom)
	if got := GetCatalog("custom"); got != custom {
		t.Fatal("expected registered catalog")
	}
}
