package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd  Type = "add"
	TypeDel  Type = "del"
	TypeFind Type = "find"
	TypeGoto Type = "goto"
	TypeMode Type = "mode"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title    string
	Deadline string
	Priority string
	Category string
	Assignee string
}

type DelArgs struct {
	Target string
}

type FindArgs struct {
	Query string
}

type GotoArgs struct {
	Date string
}

type ModeArgs struct {
	Mode string
}

type Command struct {
	Type Type
	Raw  string
	Add  *AddArgs
	Del  *DelArgs
	Find *FindArgs
	Goto *GotoArgs
	Mode *ModeArgs
}

// Parse turns a palette input line into a Command. Add understands
// key:value modifiers after the title: due:, prio:, cat:, for:.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, ":") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, ":"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeDel:
		return parseDel(input, args)
	case TypeFind:
		return parseFind(input, args)
	case TypeGoto:
		return parseGoto(input, args)
	case TypeMode:
		return parseMode(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	add := &AddArgs{}
	titleWords := make([]string, 0, len(args))
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(lower, "due:"):
			add.Deadline = strings.TrimSpace(arg[len("due:"):])
		case strings.HasPrefix(lower, "prio:"):
			add.Priority = strings.TrimSpace(arg[len("prio:"):])
		case strings.HasPrefix(lower, "cat:"):
			add.Category = strings.TrimSpace(arg[len("cat:"):])
		case strings.HasPrefix(lower, "for:"):
			add.Assignee = strings.TrimSpace(arg[len("for:"):])
		default:
			titleWords = append(titleWords, arg)
		}
	}
	add.Title = strings.TrimSpace(strings.Join(titleWords, " "))
	if add.Title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: add}, nil
}

func parseDel(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "del requires a task id prefix"}
	}
	return Command{Type: TypeDel, Raw: raw, Del: &DelArgs{Target: args[0]}}, nil
}

func parseFind(raw string, args []string) (Command, error) {
	// A bare find clears the active query.
	return Command{Type: TypeFind, Raw: raw, Find: &FindArgs{Query: strings.Join(args, " ")}}, nil
}

func parseGoto(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires a YYYY-MM-DD date"}
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Date: args[0]}}, nil
}

func parseMode(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "mode requires day, week or month"}
	}
	mode := strings.ToLower(args[0])
	switch mode {
	case "day", "week", "month":
		return Command{Type: TypeMode, Raw: raw, Mode: &ModeArgs{Mode: mode}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown mode: %s", mode)}
	}
}
