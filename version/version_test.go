package version

import (
	"strings"
	"testing"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Version != Version {
		t.Errorf("expected version %q, got %q", Version, info.Version)
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("expected os/arch platform, got %q", info.Platform)
	}
	if !strings.Contains(info.String(), "Platform: "+info.Platform) {
		t.Errorf("String should list the platform, got:\n%s", info.String())
	}
}
