// Package config provides TUI components for configuration management.
package config

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"zikkycal.dev/zikkycal/internal/config"
	zerrors "zikkycal.dev/zikkycal/internal/errors"
	"zikkycal.dev/zikkycal/internal/tui"
)

const optionExit = "exit"

// TUIAction provides an interactive TUI for editing configuration
func TUIAction(splog *tui.Splog) error {
	if err := tui.CheckInteractiveAllowed(); err != nil {
		return err
	}

	for {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		options := []tui.SelectOption{
			{Label: fmt.Sprintf("%s: %s", config.KeyTheme, cfg.Theme), Value: config.KeyTheme},
			{Label: fmt.Sprintf("%s: %s", config.KeyShareURL, cfg.Share.URL), Value: config.KeyShareURL},
			{Label: "Exit", Value: optionExit},
		}

		selected, err := tui.PromptSelect("Select a configuration option to edit:", options, 0)
		if err != nil {
			if errors.Is(err, tui.ErrCanceled) {
				return nil
			}
			return err
		}
		if selected == optionExit {
			return nil
		}

		current, _ := cfg.Get(selected)
		value, err := askValue(selected, current)
		if err != nil {
			if isCanceled(err) {
				continue
			}
			return err
		}
		if value == current {
			continue
		}

		if err := cfg.Set(selected, value); err != nil {
			splog.Warn("Failed to set %s: %v", selected, err)
			continue
		}
		if err := config.Save(cfg); err != nil {
			splog.Warn("Failed to save config: %v", err)
			continue
		}
		splog.Info("Set %s to: %s", selected, value)
	}
}

// askValue prompts for a new value for key
func askValue(key, current string) (string, error) {
	var value string
	switch key {
	case config.KeyTheme:
		prompt := &survey.Select{
			Message: "Theme:",
			Options: config.Themes,
			Default: current,
		}
		if err := survey.AskOne(prompt, &value); err != nil {
			return "", err
		}
	case config.KeyShareURL:
		prompt := &survey.Input{
			Message: "Share link:",
			Default: current,
		}
		validate := func(ans interface{}) error {
			s, _ := ans.(string)
			cfg := config.Default()
			return cfg.Set(config.KeyShareURL, s)
		}
		if err := survey.AskOne(prompt, &value, survey.WithValidator(survey.Required), survey.WithValidator(validate)); err != nil {
			return "", err
		}
	default:
		return "", zerrors.NewConfigKeyError(key, "")
	}
	return value, nil
}

func isCanceled(err error) bool {
	return errors.Is(err, terminal.InterruptErr) || errors.Is(err, tui.ErrCanceled)
}
