// Package cli wraps the survey prompts and card rendering the explorer uses.
package cli

import (
	"github.com/AlecAivazis/survey/v2"
)

// Choose presents a list of options and returns the selected option.
func Choose(prompt string, options []string) (string, error) {
	var result string
	q := &survey.Select{
		Message: prompt,
		Options: options,
	}
	return result, survey.AskOne(q, &result)
}

// MultiChoose presents a list of options and returns the selected subset.
func MultiChoose(prompt string, options, defaults []string) ([]string, error) {
	var result []string
	q := &survey.MultiSelect{
		Message: prompt,
		Options: options,
		Default: defaults,
	}
	return result, survey.AskOne(q, &result)
}

// Input gets a text input from the user.
func Input(prompt string) (string, error) {
	var result string
	q := &survey.Input{Message: prompt}
	return result, survey.AskOne(q, &result)
}

// InputWithDefault gets a text input with a default value.
func InputWithDefault(prompt, defaultValue string) (string, error) {
	var result string
	q := &survey.Input{
		Message: prompt,
		Default: defaultValue,
	}
	return result, survey.AskOne(q, &result)
}

// Multiline opens a multi-line editor seeded with initial content.
func Multiline(prompt, initial string) (string, error) {
	var result string
	q := &survey.Multiline{
		Message: prompt,
		Default: initial,
	}
	return result, survey.AskOne(q, &result)
}

// Confirm asks for confirmation.
func Confirm(prompt string, defaultYes bool) (bool, error) {
	var result bool
	q := &survey.Confirm{Message: prompt, Default: defaultYes}
	return result, survey.AskOne(q, &result)
}
