// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("alleles", []string{"arcc.fa", "aroe.fa"})
	viper.Set("profiles", []string{"profiles.txt"})
	viper.Set("fast", true)
	viper.Set("out", "report.tsv")

	c := New()

	if len(c.AlleleFiles) != 2 || c.AlleleFiles[0] != "arcc.fa" {
		t.Errorf("AlleleFiles = %v", c.AlleleFiles)
	}
	if len(c.ProfileFiles) != 1 || c.ProfileFiles[0] != "profiles.txt" {
		t.Errorf("ProfileFiles = %v", c.ProfileFiles)
	}
	if !c.Fast {
		t.Error("Fast not set")
	}
	if c.Out != "report.tsv" {
		t.Errorf("Out = %q", c.Out)
	}
}

func TestNewDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	c := New()

	if len(c.AlleleFiles) != 0 || len(c.ProfileFiles) != 0 {
		t.Errorf("expected empty file lists, got %v %v", c.AlleleFiles, c.ProfileFiles)
	}
	if c.Fast {
		t.Error("Fast should default to false")
	}
}
