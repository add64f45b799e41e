package commands

import (
	"errors"
	"testing"
)

func TestParseAddWithModifiers(t *testing.T) {
	cmd, err := Parse(":add Audit stock levels due:2024-06-25 prio:High cat:Inventory for:Dana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Type != TypeAdd {
		t.Fatalf("expected add command, got %q", cmd.Type)
	}
	if cmd.Add.Title != "Audit stock levels" {
		t.Fatalf("unexpected title: %q", cmd.Add.Title)
	}
	if cmd.Add.Deadline != "2024-06-25" || cmd.Add.Priority != "High" || cmd.Add.Category != "Inventory" || cmd.Add.Assignee != "Dana" {
		t.Fatalf("unexpected modifiers: %+v", cmd.Add)
	}
}

func TestParseAddRequiresTitle(t *testing.T) {
	_, err := Parse("add due:2024-06-25")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid_argument, got: %v", err)
	}
}

func TestParseDel(t *testing.T) {
	cmd, err := Parse("del 3f2a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Del.Target != "3f2a" {
		t.Fatalf("unexpected target: %q", cmd.Del.Target)
	}
}

func TestParseFindAllowsEmptyQuery(t *testing.T) {
	cmd, err := Parse("find")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Find.Query != "" {
		t.Fatalf("expected empty query, got %q", cmd.Find.Query)
	}

	cmd, err = Parse("find sales report")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Find.Query != "sales report" {
		t.Fatalf("unexpected query: %q", cmd.Find.Query)
	}
}

func TestParseGotoAndMode(t *testing.T) {
	cmd, err := Parse("goto 2024-06-19")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Goto.Date != "2024-06-19" {
		t.Fatalf("unexpected date: %q", cmd.Goto.Date)
	}

	cmd, err = Parse("mode WEEK")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Mode.Mode != "week" {
		t.Fatalf("unexpected mode: %q", cmd.Mode.Mode)
	}

	_, err = Parse("mode quarter")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid_argument, got: %v", err)
	}
}

func TestParseRejectsEmptyAndUnknown(t *testing.T) {
	for _, input := range []string{"", "   ", ":"} {
		_, err := Parse(input)
		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeEmptyInput {
			t.Fatalf("input %q: expected empty_input, got: %v", input, err)
		}
	}

	_, err := Parse("frobnicate now")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown_command, got: %v", err)
	}
}

func TestExecuteDispatches(t *testing.T) {
	called := ""
	handlers := Handlers{
		Add:  func(args AddArgs) (Result, error) { called = "add:" + args.Title; return Result{Message: "ok"}, nil },
		Mode: func(args ModeArgs) (Result, error) { called = "mode:" + args.Mode; return Result{}, nil },
	}

	cmd, err := Parse("add Ship it due:2024-06-25")
	if err != nil {
		t.Fatal(err)
	}
	res, err := Execute(cmd, handlers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "ok" || called != "add:Ship it" {
		t.Fatalf("unexpected dispatch: %q %q", res.Message, called)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("del abc")
	if err != nil {
		t.Fatal(err)
	}
	_, err = Execute(cmd, Handlers{})
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected handler_missing, got: %v", err)
	}
}
