package main

import (
	"errors"
	"fmt"
	"time"

	"datefield"
	"datefield/form"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
)

const fieldWidth = 60

func runDemo(cmd *cobra.Command, a *app) error {
	var dc demoConfig
	if a.configPath != "" {
		loaded, err := loadDemoConfig(a.configPath)
		if err != nil {
			return err
		}
		dc = loaded
	}
	dc = a.merge(cmd, dc)

	cfg, pickers, err := fieldConfig(dc)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	cfg.OnSave = func(v *time.Time) {
		if v == nil {
			fmt.Fprintln(out, "saved: (no value)")
			return
		}
		fmt.Fprintf(out, "saved: %s\n", v.Format(time.RFC3339))
	}

	f, err := datefield.New(cfg, nil, pickers)
	if err != nil {
		return err
	}
	var frm form.Form
	frm.Add(f)

	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, f.View(fieldWidth))
		fmt.Fprintln(out)

		choice := ""
		err := survey.AskOne(&survey.Select{
			Message: "Action:",
			Options: []string{"pick", "clear", "validate", "submit", "quit"},
		}, &choice)
		if errors.Is(err, terminal.InterruptErr) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "pick":
			if err := f.Activate(); err != nil {
				return err
			}
		case "clear":
			f.Clear()
		case "validate":
			if err := f.Validate(); err != nil {
				fmt.Fprintf(out, "invalid: %v\n", err)
			} else {
				fmt.Fprintln(out, "valid")
			}
		case "submit":
			if !frm.Submit() {
				fmt.Fprintln(out, "submit blocked by validation")
			}
		case "quit":
			return nil
		}
	}
}
