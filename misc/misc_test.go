package misc

import "testing"

func TestBuildInfo(t *testing.T) {
	if GetAppName() != "jatsmeta" {
		t.Errorf("GetAppName() = %q", GetAppName())
	}
	if GetVersion() == "" {
		t.Error("GetVersion() is empty")
	}
	if GetGitHash() == "" {
		t.Error("GetGitHash() is empty")
	}
}
