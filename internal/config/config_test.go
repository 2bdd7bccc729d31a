package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if !strings.Contains(cfg.DatabaseURL, "budgetbook") {
		t.Errorf("DatabaseURL = %q, want default budgetbook URL", cfg.DatabaseURL)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/app")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://app:secret@db:5432/app" {
		t.Errorf("DatabaseURL = %q, want env value", cfg.DatabaseURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid config",
			cfg:  Config{Port: "8080", DatabaseURL: "postgres://localhost:5432/budgetbook"},
		},
		{
			name:    "non-numeric port",
			cfg:     Config{Port: "http", DatabaseURL: "postgres://localhost:5432/budgetbook"},
			wantErr: "must be a number",
		},
		{
			name:    "port out of range",
			cfg:     Config{Port: "70000", DatabaseURL: "postgres://localhost:5432/budgetbook"},
			wantErr: "must be between",
		},
		{
			name:    "empty database URL",
			cfg:     Config{Port: "8080", DatabaseURL: ""},
			wantErr: "must not be empty",
		},
		{
			name:    "non-postgres URL",
			cfg:     Config{Port: "8080", DatabaseURL: "mysql://localhost/budgetbook"},
			wantErr: "must be a postgres:// URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
