package prompt

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

var runInputPrompt = func(title string, validate func(string) error, input *string) error {
	return huh.NewInput().
		Title(title).
		Validate(validate).
		Value(input).
		Run()
}

var runSelectPrompt = func(title string, options []huh.Option[string], selected *string) error {
	return huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(selected).
		Run()
}

var runMultiSelectPrompt = func(title string, options []huh.Option[string], selected *[]string) error {
	return huh.NewMultiSelect[string]().
		Title(title).
		Options(options...).
		Value(selected).
		Run()
}

// HuhPrompter implements Prompter with the huh TUI library.
type HuhPrompter struct{}

// Input asks for free text; huh keeps re-asking until validate passes.
func (HuhPrompter) Input(title string, validate func(string) error) (string, error) {
	if validate == nil {
		validate = func(string) error { return nil }
	}
	var input string
	if err := runInputPrompt(title, validate, &input); err != nil {
		return "", fmt.Errorf("prompt input: %w", err)
	}
	return input, nil
}

func (HuhPrompter) Select(title string, options []Option) (string, error) {
	var selected string
	if err := runSelectPrompt(title, huhOptions(options), &selected); err != nil {
		return "", fmt.Errorf("prompt select: %w", err)
	}
	return selected, nil
}

func (HuhPrompter) MultiSelect(title string, options []Option) ([]string, error) {
	var selected []string
	if err := runMultiSelectPrompt(title, huhOptions(options), &selected); err != nil {
		return nil, fmt.Errorf("prompt multi-select: %w", err)
	}
	return selected, nil
}

func huhOptions(options []Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(options))
	for i, opt := range options {
		out[i] = huh.NewOption(opt.Label, opt.Value)
	}
	return out
}
