// Package prompt builds button requests interactively.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-ghbutton/pkg/button"
)

// Option configures an Asker.
type Option func(*Asker)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(a *Asker) {
		if driver != nil {
			a.driver = driver
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Asker) {
		a.logger = logger
	}
}

// Asker walks the user through the questions needed for a button.
type Asker struct {
	driver PromptDriver
	logger zerolog.Logger
}

// New returns an Asker using the survey driver unless overridden.
func New(options ...Option) *Asker {
	a := &Asker{logger: zerolog.Nop()}
	for _, opt := range options {
		if opt != nil {
			opt(a)
		}
	}
	if a.driver == nil {
		a.driver = NewSurveyDriver(nil)
	}
	return a
}

// AskRequest prompts for every field of a request, pre-filling answers from
// defaults. Settings and HTML attributes are carried over untouched.
func (a *Asker) AskRequest(ctx context.Context, defaults button.Request) (button.Request, error) {
	req := defaults

	typ, err := a.askType(ctx, defaults.Type)
	if err != nil {
		return button.Request{}, err
	}
	req.Type = typ

	req.User, err = a.driver.Input(ctx, InputConfig{
		Message:   "GitHub user:",
		Default:   strings.TrimSpace(defaults.User),
		Validator: required(button.ErrMissingUser),
	})
	if err != nil {
		return button.Request{}, fmt.Errorf("prompt: user: %w", err)
	}

	if typ.RequiresRepo() {
		req.Repo, err = a.driver.Input(ctx, InputConfig{
			Message:   "Repository:",
			Default:   strings.TrimSpace(defaults.Repo),
			Validator: required(button.ErrMissingRepo),
		})
		if err != nil {
			return button.Request{}, fmt.Errorf("prompt: repo: %w", err)
		}
	} else {
		req.Repo = ""
	}

	if button.ComputeDefaults(typ, req.User, req.Repo).CountAPI != "" {
		show, err := a.driver.Confirm(ctx, ConfirmConfig{
			Message: "Show count?",
			Default: defaults.CountVisible(),
		})
		if err != nil {
			return button.Request{}, fmt.Errorf("prompt: show count: %w", err)
		}
		req.ShowCount = button.Bool(show)
	}

	req.Label, err = a.driver.Input(ctx, InputConfig{
		Message: "Label:",
		Default: defaults.Label,
		Help:    "Leave blank to use the translated default label.",
	})
	if err != nil {
		return button.Request{}, fmt.Errorf("prompt: label: %w", err)
	}

	validated, err := button.Validate(req)
	if err != nil {
		return button.Request{}, err
	}
	a.logger.Debug().Str("type", validated.Type.String()).Str("user", validated.User).Msg("collected button request")

	if err := a.driver.Info(ctx, summary(validated)); err != nil {
		return button.Request{}, err
	}
	return validated, nil
}

// AskRequest is a shortcut for New(WithPromptDriver(driver)).AskRequest.
func AskRequest(ctx context.Context, driver PromptDriver, defaults button.Request) (button.Request, error) {
	return New(WithPromptDriver(driver)).AskRequest(ctx, defaults)
}

func (a *Asker) askType(ctx context.Context, current button.Type) (button.Type, error) {
	types := button.Types()
	options := make([]string, len(types))
	defaultIndex := 0
	for i, typ := range types {
		options[i] = typ.String()
		if parsed, err := button.ParseType(string(current)); err == nil && parsed == typ {
			defaultIndex = i
		}
	}

	idx, err := a.driver.Select(ctx, SelectConfig{
		Message:      "Button type:",
		Options:      options,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return "", fmt.Errorf("prompt: type: %w", err)
	}
	if idx < 0 || idx >= len(types) {
		return "", ErrNoSelection
	}
	return types[idx], nil
}

func required(sentinel error) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return sentinel
		}
		return nil
	}
}

func summary(req button.Request) string {
	target := req.User
	if req.Repo != "" {
		target += "/" + req.Repo
	}
	return fmt.Sprintf("%s button for %s", req.Type, target)
}

// IsAborted reports whether err came from the user cancelling a prompt.
func IsAborted(err error) bool {
	return errors.Is(err, ErrAborted)
}
