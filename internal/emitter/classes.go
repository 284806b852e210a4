package emitter

import (
	"github.com/cwbudde/gemc/internal/ast"
	"github.com/cwbudde/gemc/internal/errors"
)

// emitClass lowers a class declaration, partitioning methods into a
// `public:` section followed by a `private:` section, each emitted only
// when non-empty, source order preserved within each (spec.md §4.4,
// §5's class-emit partitioning invariant).
func (e *Emitter) emitClass(c *ast.ClassDecl) *errors.Diagnostic {
	e.sb.WriteString("class ")
	e.sb.WriteString(c.Name)
	if c.BaseClass != "" {
		e.sb.WriteString(" : public ")
		e.sb.WriteString(c.BaseClass)
	}
	e.sb.WriteString(" {\n")

	var publicMethods, privateMethods []*ast.ClassFunction
	for _, m := range c.Methods {
		if m.Access == ast.Public {
			publicMethods = append(publicMethods, m)
		} else {
			privateMethods = append(privateMethods, m)
		}
	}

	if len(publicMethods) > 0 {
		e.sb.WriteString("public:\n")
		for _, m := range publicMethods {
			if d := e.emitMethod(m); d != nil {
				return d
			}
		}
	}
	if len(privateMethods) > 0 {
		e.sb.WriteString("private:\n")
		for _, m := range privateMethods {
			if d := e.emitMethod(m); d != nil {
				return d
			}
		}
	}

	e.sb.WriteString("};\n")
	return nil
}

// emitMethod lowers `[virtual ]RetType Name(Args) [override ]`, followed
// by a block body or `= 0;` when the body is Empty (pure virtual). An
// external method is always written with `virtual`, so it lowers to a
// pure-virtual method. An override with an empty body is an invariant
// violation (spec.md §3); the parser accepts it, and it is rejected here
// as an EmitError.
func (e *Emitter) emitMethod(m *ast.ClassFunction) *errors.Diagnostic {
	if m.IsOverride && isEmptyBody(m.Body) {
		return e.emitErrorf("ClassFunction", m, "override method %q must have a non-empty body", m.Name)
	}
	if m.IsExternal && m.IsOverride {
		return e.emitErrorf("ClassFunction", m, "external and override are mutually exclusive on %q", m.Name)
	}
	if m.IsExternal && !isEmptyBody(m.Body) {
		return e.emitErrorf("ClassFunction", m, "external method %q must have an empty body", m.Name)
	}

	if m.IsVirtual || m.IsExternal {
		e.sb.WriteString("virtual ")
	}
	e.sb.WriteString(lowerType(m.ReturnType))
	e.sb.WriteString(" ")
	e.sb.WriteString(m.Name)
	e.sb.WriteString("(")
	e.sb.WriteString(paramsCpp(m.Args))
	e.sb.WriteString(")")
	if m.IsOverride {
		e.sb.WriteString(" override")
	}

	if isEmptyBody(m.Body) {
		e.sb.WriteString(" = 0;\n")
		return nil
	}

	block, ok := m.Body.(*ast.Block)
	if !ok {
		return e.emitErrorf("ClassFunction", m, "method %q body must be a Block or Empty", m.Name)
	}
	e.sb.WriteString(" ")
	return e.emitBlockInline(block)
}
