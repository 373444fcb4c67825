package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/fenilsonani/disksweep/pkg/utils"
)

func newSettingCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "scratch"}
	cmd.Flags().String("min-size", "100KB", "")
	cmd.Flags().Int("max-depth", 0, "")
	return cmd
}

func TestSizeSettingConfigUsedWhenFlagUnset(t *testing.T) {
	cmd := newSettingCmd()

	got, err := sizeSetting(cmd, "min-size", "100KB", "50KB")
	if err != nil {
		t.Fatalf("sizeSetting: %v", err)
	}
	if got != 50*utils.KB {
		t.Errorf("got %d, want config value %d", got, 50*utils.KB)
	}
}

func TestSizeSettingFlagWinsWhenSet(t *testing.T) {
	cmd := newSettingCmd()
	if err := cmd.Flags().Set("min-size", "1MB"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	got, err := sizeSetting(cmd, "min-size", "1MB", "50KB")
	if err != nil {
		t.Fatalf("sizeSetting: %v", err)
	}
	if got != utils.MB {
		t.Errorf("got %d, want flag value %d", got, utils.MB)
	}
}

func TestSizeSettingEmptyConfigFallsBackToFlagDefault(t *testing.T) {
	cmd := newSettingCmd()

	got, err := sizeSetting(cmd, "min-size", "100KB", "")
	if err != nil {
		t.Fatalf("sizeSetting: %v", err)
	}
	if got != 100*utils.KB {
		t.Errorf("got %d, want flag default %d", got, 100*utils.KB)
	}
}

func TestSizeSettingInvalidConfigValue(t *testing.T) {
	cmd := newSettingCmd()

	if _, err := sizeSetting(cmd, "min-size", "100KB", "not-a-size"); err == nil {
		t.Error("expected error for unparseable config value")
	}
}

func TestDepthSettingConfigUsedWhenFlagUnset(t *testing.T) {
	cmd := newSettingCmd()

	if got := depthSetting(cmd, "max-depth", 0, 4); got != 4 {
		t.Errorf("got %d, want config value 4", got)
	}
}

func TestDepthSettingFlagWinsWhenSet(t *testing.T) {
	cmd := newSettingCmd()
	if err := cmd.Flags().Set("max-depth", "2"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	if got := depthSetting(cmd, "max-depth", 2, 4); got != 2 {
		t.Errorf("got %d, want flag value 2", got)
	}
}

func TestDepthSettingZeroConfigKeepsFlagDefault(t *testing.T) {
	cmd := newSettingCmd()

	if got := depthSetting(cmd, "max-depth", 0, 0); got != 0 {
		t.Errorf("got %d, want unbounded 0", got)
	}
}
