package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MalekBael/FFXIV-LGB-Parser/pkg/lgb"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Decode.Rotation != "quaternion" {
		t.Errorf("expected rotation 'quaternion', got %q", cfg.Decode.Rotation)
	}
	if cfg.Batch.Workers < 1 {
		t.Errorf("expected at least 1 worker, got %d", cfg.Batch.Workers)
	}
	if cfg.Batch.Pattern != "*.lgb" {
		t.Errorf("expected pattern '*.lgb', got %q", cfg.Batch.Pattern)
	}
	if cfg.Export.Pretty {
		t.Error("expected pretty to be false by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %q", cfg.Logging.LogFile)
	}
}

func TestDecodeOptions(t *testing.T) {
	tests := []struct {
		rotation string
		want     lgb.RotationFormat
		wantErr  bool
	}{
		{"", lgb.RotationQuaternion, false},
		{"quaternion", lgb.RotationQuaternion, false},
		{"euler", lgb.RotationEuler, false},
		{"degrees", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.rotation, func(t *testing.T) {
			cfg := Default()
			cfg.Decode.Rotation = tt.rotation

			opts, err := cfg.DecodeOptions()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && opts.Rotation != tt.want {
				t.Errorf("rotation = %v, want %v", opts.Rotation, tt.want)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "lgbtool.yaml")

	content := []byte(`
decode:
  rotation: euler
export:
  pretty: true
  output_dir: /tmp/out
batch:
  workers: 3
  pattern: "*.bin"
logging:
  level: debug
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Decode.Rotation != "euler" {
		t.Errorf("rotation = %q", cfg.Decode.Rotation)
	}
	if !cfg.Export.Pretty || cfg.Export.OutputDir != "/tmp/out" {
		t.Errorf("export = %+v", cfg.Export)
	}
	if cfg.Batch.Workers != 3 || cfg.Batch.Pattern != "*.bin" {
		t.Errorf("batch = %+v", cfg.Batch)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
}

func TestLoadFromFile_PartialOverride(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "lgbtool.yaml")

	content := []byte("logging:\n  level: warn\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
	// Untouched sections keep their defaults.
	if cfg.Decode.Rotation != "quaternion" {
		t.Errorf("rotation = %q, want default", cfg.Decode.Rotation)
	}
	if cfg.Batch.Pattern != "*.lgb" {
		t.Errorf("pattern = %q, want default", cfg.Batch.Pattern)
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "lgbtool.yaml")

	if err := os.WriteFile(path, []byte("{not yaml"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
