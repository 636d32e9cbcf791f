package ui

import (
	"os"

	survey "github.com/AlecAivazis/survey/v2"
)

// Confirm asks a yes/no question on the terminal. The default answer is No,
// so plain Enter declines.
func (l *Logger) Confirm(text string) (bool, error) {
	l.Spacer()

	answer := false
	prompt := &survey.Confirm{
		Message: text,
		Default: false,
	}

	err := survey.AskOne(
		prompt,
		&answer,
		survey.WithStdio(os.Stdin, os.Stdout, os.Stderr),
	)
	if err != nil {
		return false, err
	}

	return answer, nil
}
