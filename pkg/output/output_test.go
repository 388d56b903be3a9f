package output

import (
	"path/filepath"
	"testing"

	"github.com/mingle-social/cli/pkg/config"
)

func TestGetOutputFormat(t *testing.T) {
	if err := config.Init(filepath.Join(t.TempDir(), "config.toml")); err != nil {
		t.Fatalf("config init: %v", err)
	}

	if GetOutputFormat() != FormatText {
		t.Errorf("default format = %q, want text", GetOutputFormat())
	}

	if err := config.SetString("output.format", "json"); err != nil {
		t.Fatalf("set format: %v", err)
	}
	if GetOutputFormat() != FormatJSON {
		t.Errorf("format = %q, want json", GetOutputFormat())
	}
}

func TestPrintRecordHandlesBothFormats(t *testing.T) {
	if err := config.Init(filepath.Join(t.TempDir(), "config.toml")); err != nil {
		t.Fatalf("config init: %v", err)
	}

	data := map[string]interface{}{"Username": "alice", "Following": 2}

	PrintRecord("Profile", data)

	if err := config.SetString("output.format", "json"); err != nil {
		t.Fatalf("set format: %v", err)
	}
	PrintRecord("Profile", data)
}
