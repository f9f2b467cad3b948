package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/portfolio/internal/app/system/mailer"
	"github.com/dalemusser/portfolio/internal/app/system/timeouts"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func completeAppConfig() AppConfig {
	return AppConfig{
		MailSMTPHost: "smtp.example.com",
		MailSMTPPort: 465,
		MailSMTPUser: "user@example.com",
		MailSMTPPass: "secret",
		MailTo:       "owner@example.com",
		MailTimeout:  30 * time.Second,
		SiteName:     "Portfolio",
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	appCfg := AppConfig{
		MailSMTPHost: "from-file.example.com",
		MailSMTPPort: 465,
		MailFrom:     "file@example.com",
	}
	env := map[string]string{
		"SMTP_HOST": "smtp.example.com",
		"SMTP_PORT": "587",
		"SMTP_USER": "user@example.com",
		"SMTP_PASS": "secret",
		"MAIL_TO":   "owner@example.com",
		"MAIL_FROM": "", // set but empty: ignored
	}

	if err := applyEnvOverrides(&appCfg, lookupFrom(env), testLogger()); err != nil {
		t.Fatalf("applyEnvOverrides() error: %v", err)
	}

	want := AppConfig{
		MailSMTPHost: "smtp.example.com",
		MailSMTPPort: 587,
		MailSMTPUser: "user@example.com",
		MailSMTPPass: "secret",
		MailFrom:     "file@example.com",
		MailTo:       "owner@example.com",
	}
	if !reflect.DeepEqual(appCfg, want) {
		t.Errorf("got %+v\nwant %+v", appCfg, want)
	}
}

func TestApplyEnvOverrides_NothingSet(t *testing.T) {
	appCfg := completeAppConfig()
	before := appCfg

	if err := applyEnvOverrides(&appCfg, lookupFrom(nil), testLogger()); err != nil {
		t.Fatalf("applyEnvOverrides() error: %v", err)
	}
	if !reflect.DeepEqual(appCfg, before) {
		t.Errorf("config changed without overrides: %+v", appCfg)
	}
}

func TestApplyEnvOverrides_BadPort(t *testing.T) {
	appCfg := AppConfig{}
	err := applyEnvOverrides(&appCfg, lookupFrom(map[string]string{"SMTP_PORT": "smtp"}), testLogger())
	if err == nil || !strings.Contains(err.Error(), "SMTP_PORT") {
		t.Errorf("expected SMTP_PORT error, got %v", err)
	}
}

func TestMailConfig_SenderFallback(t *testing.T) {
	tests := []struct {
		name string
		from string
		user string
		want string
	}{
		{"explicit from", "site@example.com", "user@example.com", "site@example.com"},
		{"falls back to user", "", "user@example.com", "user@example.com"},
		{"falls back to default", "", "", mailer.DefaultFrom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appCfg := AppConfig{MailFrom: tt.from, MailSMTPUser: tt.user}
			if got := appCfg.MailConfig().Sender(); got != tt.want {
				t.Errorf("Sender() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{" , ", nil},
		{"https://a.example.com", []string{"https://a.example.com"}},
		{"https://a.example.com, https://b.example.com,", []string{"https://a.example.com", "https://b.example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{"complete", func(c *AppConfig) {}, ""},
		{"port zero", func(c *AppConfig) { c.MailSMTPPort = 0 }, "mail_smtp_port"},
		{"port too large", func(c *AppConfig) { c.MailSMTPPort = 70000 }, "mail_smtp_port"},
		{"timeout zero", func(c *AppConfig) { c.MailTimeout = 0 }, "mail_timeout"},
		{"incomplete mail, optional", func(c *AppConfig) { c.MailSMTPPass = "" }, ""},
		{"incomplete mail, required", func(c *AppConfig) {
			c.MailSMTPPass = ""
			c.MailRequired = true
		}, "mail_required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appCfg := completeAppConfig()
			tt.mutate(&appCfg)

			err := ValidateConfig(nil, appCfg, testLogger())
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateConfig() error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateConfig() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateConfig_RequiredWrapsNotConfigured(t *testing.T) {
	appCfg := completeAppConfig()
	appCfg.MailTo = ""
	appCfg.MailRequired = true

	err := ValidateConfig(nil, appCfg, testLogger())
	if !errors.Is(err, mailer.ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestConnectDB(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		deps, err := ConnectDB(context.Background(), nil, completeAppConfig(), testLogger())
		if err != nil {
			t.Fatalf("ConnectDB() error: %v", err)
		}
		if deps.Mailer == nil {
			t.Error("expected a mailer")
		}
		if deps.MailConfig.To != "owner@example.com" {
			t.Errorf("MailConfig.To = %q", deps.MailConfig.To)
		}
	})

	t.Run("incomplete", func(t *testing.T) {
		appCfg := completeAppConfig()
		appCfg.MailSMTPHost = ""
		deps, err := ConnectDB(context.Background(), nil, appCfg, testLogger())
		if err != nil {
			t.Fatalf("ConnectDB() error: %v", err)
		}
		if deps.Mailer != nil {
			t.Error("expected no mailer when settings are incomplete")
		}
	})
}

func TestStartup_ConfiguresTimeouts(t *testing.T) {
	timeouts.Reset()
	defer timeouts.Reset()

	appCfg := completeAppConfig()
	appCfg.MailTimeout = 7 * time.Second

	if err := Startup(context.Background(), nil, appCfg, DBDeps{}, testLogger()); err != nil {
		t.Fatalf("Startup() error: %v", err)
	}
	if got := timeouts.SMTP(); got != 7*time.Second {
		t.Errorf("timeouts.SMTP() = %v, want %v", got, 7*time.Second)
	}
}

func TestNewRouter(t *testing.T) {
	// No mailer: the contact endpoint reports CONFIG.
	router := newRouter(completeAppConfig(), DBDeps{}, testLogger())

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"health", "GET", "/api/health", "", http.StatusOK},
		{"contact preflight", "OPTIONS", "/api/contact", "", http.StatusNoContent},
		{"contact not configured", "POST", "/api/contact",
			`{"name":"Jo","subject":"Hi","message":"Test","email":"a@b.com"}`, http.StatusServiceUnavailable},
		{"contact invalid", "POST", "/api/contact", `{}`, http.StatusBadRequest},
		{"unknown api path", "GET", "/api/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("%s %s: got %d, want %d (body %q)", tt.method, tt.path, rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}
