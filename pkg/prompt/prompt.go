// Package prompt asks the user to review a pending install or confirm an
// action, using huh forms on stderr.
package prompt

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/shohamc1/mxbmm/pkg/category"
	"github.com/shohamc1/mxbmm/pkg/errors"
	"github.com/shohamc1/mxbmm/pkg/staging"
)

// Prompter runs forms. The zero value is not usable; call New.
type Prompter struct {
	isTerminal func() bool
	run        func(form *huh.Form) error
}

// New creates a Prompter bound to the process terminal.
func New() *Prompter {
	return &Prompter{
		isTerminal: IsInteractive,
		run:        func(form *huh.Form) error { return form.Run() },
	}
}

func (p *Prompter) runForm(form *huh.Form) error {
	if !p.isTerminal() {
		return errors.New(errors.ErrNotInteractive, "interactive mode needs a terminal")
	}
	form.WithOutput(os.Stderr)

	err := p.run(form)
	if stderrors.Is(err, huh.ErrUserAborted) {
		return errors.New(errors.ErrCancelled, "cancelled")
	}
	return err
}

// EditPending lets the user change category, name, version and notes. The
// pending install is only updated when the form is submitted. problem, when
// set, is shown above the form, typically the error of a previous commit.
func (p *Prompter) EditPending(pending *staging.PendingInstall, problem string) error {
	cat := pending.Category
	name := pending.Name
	version := pending.Version
	notes := pending.Notes

	options := make([]huh.Option[category.Category], 0, len(category.All()))
	for _, c := range category.All() {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", c.Label(), c.RelativePath()), c))
	}

	description := fmt.Sprintf("%s: %s", pending.Source.Kind(), pending.Source.InputPath())
	if problem != "" {
		description = problem + "\n\n" + description
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Pending install").
				Description(description),
			huh.NewSelect[category.Category]().
				Title("Install as").
				Options(options...).
				Value(&cat),
			huh.NewInput().
				Title("Install name").
				Validate(ValidateName).
				Value(&name),
			huh.NewInput().
				Title("Version").
				Placeholder("optional").
				Value(&version),
			huh.NewText().
				Title("Notes").
				Placeholder("optional").
				Value(&notes),
		),
	)

	if err := p.runForm(form); err != nil {
		return err
	}

	pending.Category = cat
	pending.Name = name
	pending.Version = version
	pending.Notes = notes
	return nil
}

// Confirm asks a yes/no question. Declining is not an error.
func (p *Prompter) Confirm(title, description string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	)
	if err := p.runForm(form); err != nil {
		return false, err
	}
	return ok, nil
}

// ValidateName rejects names that are empty after trimming.
func ValidateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return stderrors.New("install name cannot be empty")
	}
	return nil
}
