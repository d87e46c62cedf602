package main

import (
	"os"

	"datefield"

	"github.com/spf13/cobra"
)

// app carries the demo's flag values before they are resolved into a field
// configuration (the optional YAML config file provides defaults; flags that
// were set explicitly win).
type app struct {
	configPath string

	label       string
	placeholder string
	format      string

	dateOnly bool
	timeOnly bool

	firstDate    string
	lastDate     string
	initialValue string

	use24h                bool
	clearable             bool
	disabled              bool
	autoValidate          bool
	required              bool
	preserveDisplayedDate bool

	platform string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "datefield",
		Short:        "Interactive demo for the datefield form widget",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, a)
		},
	}

	cmd.Flags().StringVar(&a.configPath, "config", "", "Path to a YAML demo config (flags override it)")
	cmd.Flags().StringVar(&a.label, "label", "", "Field label")
	cmd.Flags().StringVar(&a.placeholder, "placeholder", "", "Placeholder shown while no value is set")
	cmd.Flags().StringVar(&a.format, "format", "", "Go time layout for the displayed value")
	cmd.Flags().BoolVar(&a.dateOnly, "date-only", false, "Pick a date without a time")
	cmd.Flags().BoolVar(&a.timeOnly, "time-only", false, "Pick a time without a date")
	cmd.Flags().StringVar(&a.firstDate, "first", "", "Earliest selectable date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&a.lastDate, "last", "", "Latest selectable date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&a.initialValue, "initial", "", "Initial value (YYYY-MM-DD or YYYY-MM-DDTHH:MM)")
	cmd.Flags().BoolVar(&a.use24h, "24h", false, "Use 24-hour time display")
	cmd.Flags().BoolVar(&a.clearable, "clearable", false, "Render a clear affordance")
	cmd.Flags().BoolVar(&a.disabled, "disabled", false, "Render the field disabled")
	cmd.Flags().BoolVar(&a.autoValidate, "auto-validate", false, "Re-validate on every value change")
	cmd.Flags().BoolVar(&a.required, "required", false, "Install a demo validator that rejects empty values")
	cmd.Flags().BoolVar(&a.preserveDisplayedDate, "preserve-displayed-date", false, "Time-only commits keep the displayed date instead of the initial one")
	cmd.Flags().StringVar(&a.platform, "platform", "sheet", "Picker family to exercise (sheet|dialog)")

	cmd.AddCommand(newDocsCmd())
	return cmd
}

func main() {
	datefield.ApplyColorProfilePreference()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
