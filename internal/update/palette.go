package update

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"opsboard/internal/calendar"
	"opsboard/internal/commands"
	"opsboard/internal/model"
	"opsboard/internal/nav"
	"opsboard/internal/store"
	"opsboard/internal/workflow"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Dismissing the palette abandons any in-flight submission.
		m.Submitter.Cancel()
		m.paletteActive = false
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command cancelled", IsError: false}
		return m, nil
	case "enter":
		input := m.commandInput.Value()
		m.paletteActive = false
		m.commandInput.Blur()
		return m.executeCommand(input)
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

func (m Model) executeCommand(input string) (tea.Model, tea.Cmd) {
	cmdline, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var teaCmd tea.Cmd
	handlers := commands.Handlers{
		Add: func(args commands.AddArgs) (commands.Result, error) {
			fields := store.Fields{
				Title:    args.Title,
				Deadline: args.Deadline,
				Priority: model.Priority(args.Priority),
				Category: model.Category(args.Category),
				Assignee: args.Assignee,
			}
			if fields.Deadline == "" {
				fields.Deadline = m.Nav.Anchor().Key()
			}
			// The flight only commits the draft; the store write happens
			// on the update loop when the resolution message arrives.
			ch, submitErr := m.Submitter.Submit(context.Background(),
				func(context.Context) (model.Task, error) { return m.Store.Prepare(fields) },
			)
			if submitErr != nil {
				return commands.Result{}, submitErr
			}
			teaCmd = waitForSubmit(ch)
			return commands.Result{Message: fmt.Sprintf("submitting %q", args.Title)}, nil
		},
		Del: func(args commands.DelArgs) (commands.Result, error) {
			task, findErr := m.findByIDPrefix(args.Target)
			if findErr != nil {
				return commands.Result{}, findErr
			}
			if removeErr := m.Store.Remove(context.Background(), task.ID); removeErr != nil {
				return commands.Result{}, removeErr
			}
			return commands.Result{Message: fmt.Sprintf("deleted %q", task.Title)}, nil
		},
		Find: func(args commands.FindArgs) (commands.Result, error) {
			m.Query = args.Query
			m.searchInput.SetValue(args.Query)
			if args.Query == "" {
				return commands.Result{Message: "filter cleared"}, nil
			}
			return commands.Result{Message: "filter: " + args.Query}, nil
		},
		Goto: func(args commands.GotoArgs) (commands.Result, error) {
			date, ok := calendar.ParseKey(args.Date)
			if !ok {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: fmt.Sprintf("%q is not a valid YYYY-MM-DD date", args.Date),
				}
			}
			m.Nav.Goto(date)
			m.CurrentView = ViewCalendar
			return commands.Result{Message: "calendar anchor: " + date.Key()}, nil
		},
		Mode: func(args commands.ModeArgs) (commands.Result, error) {
			m.Nav.SetMode(nav.Mode(args.Mode))
			m.CurrentView = ViewCalendar
			return commands.Result{Message: "calendar mode: " + args.Mode}, nil
		},
	}

	res, err := commands.Execute(cmdline, handlers)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	if strings.TrimSpace(res.Message) != "" {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}
	return m, teaCmd
}

func (m Model) findByIDPrefix(prefix string) (model.Task, error) {
	var matches []model.Task
	for _, t := range m.Store.List() {
		if strings.HasPrefix(t.ID, prefix) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return model.Task{}, &commands.CommandError{
			Code:    commands.ErrCodeInvalidArgument,
			Message: fmt.Sprintf("no task matches id %q", prefix),
		}
	case 1:
		return matches[0], nil
	default:
		return model.Task{}, &commands.CommandError{
			Code:    commands.ErrCodeInvalidArgument,
			Message: fmt.Sprintf("id %q is ambiguous (%d matches)", prefix, len(matches)),
		}
	}
}

func waitForSubmit(ch <-chan workflow.Result) tea.Cmd {
	return func() tea.Msg {
		return SubmitResolvedMsg{Res: <-ch}
	}
}
