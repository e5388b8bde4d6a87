package prompt

import (
	"fmt"

	"github.com/frsk-dev/devhub/internal/project"
)

// Prompter asks the user questions.
type Prompter interface {
	Input(title string, validate func(string) error) (string, error)
	Select(title string, options []Option) (string, error)
	MultiSelect(title string, options []Option) ([]string, error)
}

// Option is one selectable answer.
type Option struct {
	Label string
	Value string
}

// Answers is everything the create command needs from the user.
type Answers struct {
	Name     string
	Template project.TemplateID
	Flags    []project.Flag
	// FeaturesSet marks Flags as decided, even when empty.
	FeaturesSet bool
}

// Collect asks only for what preset leaves open: the name when empty, the
// template when unset, and each feature question when features are not
// already decided.
func Collect(p Prompter, catalog *project.Catalog, preset Answers) (Answers, error) {
	answers := preset

	if answers.Name == "" {
		name, err := p.Input("Project name:", project.ValidateName)
		if err != nil {
			return Answers{}, err
		}
		answers.Name = name
	}
	if err := project.ValidateName(answers.Name); err != nil {
		return Answers{}, err
	}

	if answers.Template == "" {
		options := make([]Option, 0, len(catalog.Templates))
		for _, t := range catalog.Templates {
			options = append(options, Option{Label: t.Label, Value: string(t.ID)})
		}
		choice, err := p.Select("Select project template:", options)
		if err != nil {
			return Answers{}, err
		}
		id, err := project.ParseTemplateID(choice)
		if err != nil {
			return Answers{}, err
		}
		answers.Template = id
	}

	info, ok := catalog.Lookup(answers.Template)
	if !ok {
		return Answers{}, fmt.Errorf("template %q is not in the catalog", answers.Template)
	}

	if !answers.FeaturesSet {
		flags, err := askFeatures(p, info)
		if err != nil {
			return Answers{}, err
		}
		answers.Flags = flags
		answers.FeaturesSet = true
	}
	return answers, nil
}

// askFeatures runs one multi-select per question. Hidden choices are never
// offered.
func askFeatures(p Prompter, info *project.TemplateInfo) ([]project.Flag, error) {
	var flags []project.Flag
	for _, q := range info.Questions {
		visible := q.Visible()
		if len(visible) == 0 {
			continue
		}
		options := make([]Option, len(visible))
		for i, ch := range visible {
			options[i] = Option{Label: ch.Label, Value: string(ch.Flag)}
		}
		picked, err := p.MultiSelect(q.Message, options)
		if err != nil {
			return nil, err
		}
		for _, v := range picked {
			f, err := project.ParseFlag(v)
			if err != nil {
				return nil, err
			}
			flags = append(flags, f)
		}
	}
	return flags, nil
}
