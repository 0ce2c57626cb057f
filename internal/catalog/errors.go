package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrSourceUnreadable      = errors.New("catalog source unreadable")
	ErrDescriptionUnreadable = errors.New("description unreadable")
)

type DiagnosticKind int

const (
	SourceUnreadable DiagnosticKind = iota
	MalformedLine
)

func (k DiagnosticKind) String() string {
	switch k {
	case SourceUnreadable:
		return "source_unreadable"
	case MalformedLine:
		return "malformed_line"
	default:
		return "unknown"
	}
}

// Diagnostic records something the loader skipped. Loading continues regardless.
type Diagnostic struct {
	Kind     DiagnosticKind
	Category string
	Source   string
	Line     int // 1-based, zero for SourceUnreadable
	Text     string
	Err      error
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case MalformedLine:
		return fmt.Sprintf("%s:%d: skipped malformed line %q", d.Source, d.Line, d.Text)
	default:
		return fmt.Sprintf("%s: %v", d.Source, d.Err)
	}
}

// Fields renders the diagnostic for the structured logger.
func (d Diagnostic) Fields() map[string]interface{} {
	fields := map[string]interface{}{
		"kind":     d.Kind.String(),
		"category": d.Category,
		"source":   d.Source,
	}
	if d.Line > 0 {
		fields["line"] = d.Line
		fields["text"] = d.Text
	}
	if d.Err != nil {
		fields["error"] = d.Err.Error()
	}
	return fields
}
