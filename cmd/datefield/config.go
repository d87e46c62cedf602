package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"datefield"
	"datefield/dialog"
	"datefield/sheet"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// demoConfig mirrors the demo flags for file-based configuration.
type demoConfig struct {
	Label       string `yaml:"label"`
	Placeholder string `yaml:"placeholder"`
	Format      string `yaml:"format"`

	DateOnly bool `yaml:"dateOnly"`
	TimeOnly bool `yaml:"timeOnly"`

	FirstDate    string `yaml:"firstDate"`
	LastDate     string `yaml:"lastDate"`
	InitialValue string `yaml:"initialValue"`

	Use24Hour             bool `yaml:"use24Hour"`
	Clearable             bool `yaml:"clearable"`
	Disabled              bool `yaml:"disabled"`
	AutoValidate          bool `yaml:"autoValidate"`
	Required              bool `yaml:"required"`
	PreserveDisplayedDate bool `yaml:"preserveDisplayedDate"`

	Platform string `yaml:"platform"`
}

func loadDemoConfig(path string) (demoConfig, error) {
	var dc demoConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return dc, err
	}
	if err := yaml.Unmarshal(b, &dc); err != nil {
		return dc, fmt.Errorf("parse %s: %w", path, err)
	}
	return dc, nil
}

// merge applies explicitly-set flags over the file config. Flags that were
// not set keep the file's values.
func (a *app) merge(cmd *cobra.Command, dc demoConfig) demoConfig {
	set := cmd.Flags().Changed
	if set("label") {
		dc.Label = a.label
	}
	if set("placeholder") {
		dc.Placeholder = a.placeholder
	}
	if set("format") {
		dc.Format = a.format
	}
	if set("date-only") {
		dc.DateOnly = a.dateOnly
	}
	if set("time-only") {
		dc.TimeOnly = a.timeOnly
	}
	if set("first") {
		dc.FirstDate = a.firstDate
	}
	if set("last") {
		dc.LastDate = a.lastDate
	}
	if set("initial") {
		dc.InitialValue = a.initialValue
	}
	if set("24h") {
		dc.Use24Hour = a.use24h
	}
	if set("clearable") {
		dc.Clearable = a.clearable
	}
	if set("disabled") {
		dc.Disabled = a.disabled
	}
	if set("auto-validate") {
		dc.AutoValidate = a.autoValidate
	}
	if set("required") {
		dc.Required = a.required
	}
	if set("preserve-displayed-date") {
		dc.PreserveDisplayedDate = a.preserveDisplayedDate
	}
	if set("platform") {
		dc.Platform = a.platform
	}
	if dc.Platform == "" {
		dc.Platform = "sheet"
	}
	return dc
}

func parseDateArg(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}

func parseValueArg(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02T15:04", s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// fieldConfig resolves the merged demo config into a field configuration
// and the picker platform it selects.
func fieldConfig(dc demoConfig) (datefield.Config, datefield.Pickers, error) {
	cfg := datefield.Config{
		Label:                 dc.Label,
		Placeholder:           dc.Placeholder,
		Format:                dc.Format,
		DateOnly:              dc.DateOnly,
		TimeOnly:              dc.TimeOnly,
		Use24Hour:             dc.Use24Hour,
		Clearable:             dc.Clearable,
		Disabled:              dc.Disabled,
		AutoValidate:          dc.AutoValidate,
		PreserveDisplayedDate: dc.PreserveDisplayedDate,
	}

	if dc.FirstDate != "" {
		t, err := parseDateArg(dc.FirstDate)
		if err != nil {
			return cfg, datefield.Pickers{}, fmt.Errorf("invalid firstDate: %w", err)
		}
		cfg.FirstDate = t
	}
	if dc.LastDate != "" {
		t, err := parseDateArg(dc.LastDate)
		if err != nil {
			return cfg, datefield.Pickers{}, fmt.Errorf("invalid lastDate: %w", err)
		}
		cfg.LastDate = t
	}
	if dc.InitialValue != "" {
		t, err := parseValueArg(dc.InitialValue)
		if err != nil {
			return cfg, datefield.Pickers{}, fmt.Errorf("invalid initialValue: %w", err)
		}
		cfg.InitialValue = &t
	}
	if dc.Required {
		cfg.Validate = func(v *time.Time) error {
			if v == nil {
				return errors.New("a value is required")
			}
			return nil
		}
	}

	var pickers datefield.Pickers
	switch dc.Platform {
	case "sheet":
		pickers.Sheets = &sheet.Platform{}
	case "dialog":
		pickers.Dialogs = &dialog.Platform{}
	default:
		return cfg, pickers, fmt.Errorf("unknown platform %q (expected sheet or dialog)", dc.Platform)
	}
	return cfg, pickers, nil
}
