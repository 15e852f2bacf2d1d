package config

import (
	"os"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("COGNITO_USER_POOL_ID", "eu-west-1_abc123")
	t.Setenv("COGNITO_CLIENT_ID", "client123")
	t.Setenv("COGNITO_CLIENT_SECRET", "secret456")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("AppEnv = %q, want %q", cfg.AppEnv, "development")
	}
	if cfg.AppPort != 8080 {
		t.Errorf("AppPort = %d, want 8080", cfg.AppPort)
	}
	if cfg.AWSRegion != "eu-west-1" {
		t.Errorf("AWSRegion = %q, want %q", cfg.AWSRegion, "eu-west-1")
	}
	if cfg.JWKSCacheTTL != time.Hour {
		t.Errorf("JWKSCacheTTL = %v, want 1h", cfg.JWKSCacheTTL)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
	if cfg.MaxRequestBodySize != 65536 {
		t.Errorf("MaxRequestBodySize = %d, want 65536", cfg.MaxRequestBodySize)
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() = true, want false")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	for _, key := range []string{"COGNITO_USER_POOL_ID", "COGNITO_CLIENT_ID", "COGNITO_CLIENT_SECRET"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load() with missing pool settings should fail")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("JWKS_CACHE_TTL", "15m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AppPort != 9090 {
		t.Errorf("AppPort = %d, want 9090", cfg.AppPort)
	}
	if cfg.AWSRegion != "us-east-1" {
		t.Errorf("AWSRegion = %q, want %q", cfg.AWSRegion, "us-east-1")
	}
	if cfg.JWKSCacheTTL != 15*time.Minute {
		t.Errorf("JWKSCacheTTL = %v, want 15m", cfg.JWKSCacheTTL)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
}

func TestIssuerAndJWKSURL(t *testing.T) {
	cfg := &Config{AWSRegion: "eu-west-1", CognitoUserPoolID: "eu-west-1_abc123"}

	wantIssuer := "https://cognito-idp.eu-west-1.amazonaws.com/eu-west-1_abc123"
	if got := cfg.Issuer(); got != wantIssuer {
		t.Errorf("Issuer() = %q, want %q", got, wantIssuer)
	}

	wantJWKS := wantIssuer + "/.well-known/jwks.json"
	if got := cfg.JWKSURL(); got != wantJWKS {
		t.Errorf("JWKSURL() = %q, want %q", got, wantJWKS)
	}
}

func TestGetCORSAllowedOrigins(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "https://example.com", []string{"https://example.com"}},
		{"multiple with spaces", "https://a.com, https://b.com ,https://c.com", []string{"https://a.com", "https://b.com", "https://c.com"}},
		{"trailing comma", "https://a.com,", []string{"https://a.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{CORSAllowedOrigins: tt.value}
			got := cfg.GetCORSAllowedOrigins()
			if len(got) != len(tt.want) {
				t.Fatalf("GetCORSAllowedOrigins() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("origin[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
