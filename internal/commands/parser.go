// Package commands turns a raw chat line into a typed command.
package commands

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

type Kind string

const (
	KindListCommands Kind = "list_commands"
	KindCompleteTask Kind = "complete_task"
	KindAddSchedule  Kind = "add_schedule"
	KindAddProject   Kind = "add_project"
	KindAddTask      Kind = "add_task"
	KindChat         Kind = "chat"
)

// Envelope is the sender and room a line arrived from.
type Envelope struct {
	RoomCode   string
	SenderID   string
	SenderName string
}

// Command is one of ListCommands, CompleteTask, AddSchedule, AddProject,
// AddTask or Unrecognized.
type Command interface {
	Kind() Kind
	Origin() Envelope
	command()
}

type ListCommands struct {
	Envelope
}

type CompleteTask struct {
	Envelope
	Fields []string
}

type AddSchedule struct {
	Envelope
	Fields []string
}

// AddProject keeps the whole remainder as the name; it is not comma-split.
type AddProject struct {
	Envelope
	Name string
}

type AddTask struct {
	Envelope
	Fields []string
}

// Unrecognized is plain chat. Text is the normalized line.
type Unrecognized struct {
	Envelope
	Text string
}

func (e Envelope) Origin() Envelope { return e }

func (ListCommands) Kind() Kind { return KindListCommands }
func (CompleteTask) Kind() Kind { return KindCompleteTask }
func (AddSchedule) Kind() Kind  { return KindAddSchedule }
func (AddProject) Kind() Kind   { return KindAddProject }
func (AddTask) Kind() Kind      { return KindAddTask }
func (Unrecognized) Kind() Kind { return KindChat }

func (ListCommands) command() {}
func (CompleteTask) command() {}
func (AddSchedule) command()  {}
func (AddProject) command()   {}
func (AddTask) command()      {}
func (Unrecognized) command() {}

type prefix struct {
	text string
	kind Kind
}

// Both languages are always accepted. Longest prefix wins so that
// "!과제완료" is never read as "!과제".
var prefixes = func() []prefix {
	p := []prefix{
		{"!help", KindListCommands},
		{"!명령어", KindListCommands},
		{"!done", KindCompleteTask},
		{"!과제완료", KindCompleteTask},
		{"!schedule", KindAddSchedule},
		{"!일정", KindAddSchedule},
		{"!project", KindAddProject},
		{"!프로젝트", KindAddProject},
		{"!task", KindAddTask},
		{"!과제", KindAddTask},
	}
	sort.SliceStable(p, func(i, j int) bool { return len(p[i].text) > len(p[j].text) })
	return p
}()

// Parse classifies line by prefix on its normalized form. It never fails: a
// line with no known prefix comes back as Unrecognized holding the line as
// sent, only trimmed.
func Parse(env Envelope, line string) Command {
	text := Normalize(line)

	for _, p := range prefixes {
		if !strings.HasPrefix(text, p.text) {
			continue
		}
		rest := text[len(p.text):]

		switch p.kind {
		case KindListCommands:
			return ListCommands{Envelope: env}
		case KindCompleteTask:
			return CompleteTask{Envelope: env, Fields: SplitFields(rest)}
		case KindAddSchedule:
			return AddSchedule{Envelope: env, Fields: SplitFields(rest)}
		case KindAddProject:
			return AddProject{Envelope: env, Name: strings.TrimSpace(rest)}
		case KindAddTask:
			return AddTask{Envelope: env, Fields: SplitFields(rest)}
		}
	}

	return Unrecognized{Envelope: env, Text: strings.TrimSpace(line)}
}

// Normalize drops line breaks, trims and applies NFKC. Command fields and
// names looked up outside chat go through it so both paths agree.
func Normalize(line string) string {
	line = strings.NewReplacer("\r", "", "\n", "").Replace(line)
	return norm.NFKC.String(strings.TrimSpace(line))
}

// SplitFields splits on commas and trims every field. Empty input yields a
// single empty field.
func SplitFields(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Field returns fields[i] or "" when absent.
func Field(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

// CountPresent returns the number of leading fields before the first blank one.
func CountPresent(fields []string) int {
	for i, f := range fields {
		if f == "" {
			return i
		}
	}
	return len(fields)
}
