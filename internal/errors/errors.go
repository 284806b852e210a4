// Package errors formats gemc's compiler diagnostics with source context
// and a line/column caret, mirroring the phase-aborts-on-first-error
// policy of spec.md §7: the parser, type checker and emitter each stop at
// their first diagnostic. The lexer keeps scanning and records every
// LexError it meets.
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/gemc/internal/lexer"
)

// Kind identifies which pipeline phase raised a Diagnostic.
type Kind string

const (
	KindLex               Kind = "LexError"
	KindParse             Kind = "ParseError"
	KindType              Kind = "TypeError"
	KindNotYetImplemented Kind = "NotYetImplemented"
	KindEmit              Kind = "EmitError"
	KindHostCompile       Kind = "HostCompileError"
	KindHostRun           Kind = "HostRunError"
)

// Diagnostic is a single compiler error with enough context to render a
// source snippet and caret, the way internal errors were reported in the
// teacher this was ported from.
type Diagnostic struct {
	Kind    Kind
	Message string
	Source  string // full source text, empty if not applicable (e.g. host errors)
	File    string
	Pos     lexer.Position
}

func (d *Diagnostic) Error() string {
	return d.Format()
}

// Format renders the diagnostic as a header, an optional source line with
// a caret pointing at the column, and the message. No ANSI color is
// applied here; terminal coloring of diagnostic labels is an external
// collaborator's concern (spec.md §1), not this package's.
func (d *Diagnostic) Format() string {
	var sb strings.Builder

	if d.File != "" {
		fmt.Fprintf(&sb, "%s in %s:%d:%d\n", d.Kind, d.File, d.Pos.Line, d.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s at %d:%d\n", d.Kind, d.Pos.Line, d.Pos.Column)
	}

	if line := sourceLine(d.Source, d.Pos.Line); line != "" {
		lineNumPrefix := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(lineNumPrefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		if d.Pos.Column > 0 {
			sb.WriteString(strings.Repeat(" ", len(lineNumPrefix)+d.Pos.Column-1))
			sb.WriteString("^\n")
		}
	}

	sb.WriteString(d.Message)
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// NewLexError builds a Diagnostic for a lexer failure.
func NewLexError(msg, source, file string, pos lexer.Position) *Diagnostic {
	return &Diagnostic{Kind: KindLex, Message: msg, Source: source, File: file, Pos: pos}
}

// NewParseError builds a Diagnostic for a parser failure, mirroring
// spec.md §7's ParseError{expected, found} shape plus neighboring tokens
// for context.
func NewParseError(expected, found lexer.Token, before, after *lexer.Token, source, file string) *Diagnostic {
	msg := fmt.Sprintf("expected %s, found %s", expected.Type, found.Type)
	if before != nil || after != nil {
		msg += " ("
		if before != nil {
			msg += fmt.Sprintf("before: %s", before.Type)
		}
		if before != nil && after != nil {
			msg += ", "
		}
		if after != nil {
			msg += fmt.Sprintf("after: %s", after.Type)
		}
		msg += ")"
	}
	return &Diagnostic{Kind: KindParse, Message: msg, Source: source, File: file, Pos: found.Pos}
}

// NewTypeError builds a Diagnostic for a structural type mismatch.
func NewTypeError(msg, source, file string, pos lexer.Position) *Diagnostic {
	return &Diagnostic{Kind: KindType, Message: msg, Source: source, File: file, Pos: pos}
}

// NewNotYetImplemented builds a Diagnostic for an AST node kind the
// partial type checker does not cover (spec.md §4.3).
func NewNotYetImplemented(nodeKind, source, file string, pos lexer.Position) *Diagnostic {
	return &Diagnostic{
		Kind:    KindNotYetImplemented,
		Message: fmt.Sprintf("type checker does not yet cover %s", nodeKind),
		Source:  source, File: file, Pos: pos,
	}
}

// NewEmitError builds a Diagnostic for a node the emitter cannot lower,
// or for an invariant violation caught during emission.
func NewEmitError(nodeKind, reason, source, file string, pos lexer.Position) *Diagnostic {
	msg := fmt.Sprintf("cannot emit %s", nodeKind)
	if reason != "" {
		msg += ": " + reason
	}
	return &Diagnostic{Kind: KindEmit, Message: msg, Source: source, File: file, Pos: pos}
}

// HostError wraps a failure from the external C++ toolchain or the
// compiled binary itself. The driver returns it as a plain error rather
// than formatting it through Diagnostic, since it carries no source
// position of its own (spec.md §7).
type HostError struct {
	Kind   Kind // KindHostCompile or KindHostRun
	Path   string
	Stderr string
}

func (e *HostError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Stderr)
}

func NewHostCompileError(path, stderr string) *HostError {
	return &HostError{Kind: KindHostCompile, Path: path, Stderr: stderr}
}

func NewHostRunError(path, stderr string) *HostError {
	return &HostError{Kind: KindHostRun, Path: path, Stderr: stderr}
}
