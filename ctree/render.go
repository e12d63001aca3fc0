package ctree

import (
	"fmt"
	"strings"

	"github.com/pipit-keyboard/chordc/errors"
)

const (
	itemsPerLine = 4
	defaultType  = "uint8_t"

	// selfIncludeMarker stands in for the body's own #include until the
	// header file name is known.
	selfIncludeMarker = "\x00include-self\x00"
)

// Format is rendered header (H) and body (C) text.
type Format struct {
	H string
	C string
}

// Append adds other's text after f's.
func (f *Format) Append(other Format) {
	f.H += other.H
	f.C += other.C
}

// Files returns the final header and body text for files named base.h and
// base.cpp.
func (f Format) Files(base string) (h, c string) {
	include := fmt.Sprintf("#include \"%s.h\"\n", base)
	return f.H, strings.ReplaceAll(f.C, selfIncludeMarker, include)
}

// Validate rejects trees that would render to invalid code. Such trees are
// a bug in whatever built them, so the error is an assertion failure.
func Validate(n Node) error {
	switch v := n.(type) {
	case Array1D:
		if len(v.Values) == 0 {
			return errors.AssertionFailedf("1-D array %q is empty", v.Name)
		}
	case Array2D:
		if len(v.Values) == 0 {
			return errors.AssertionFailedf("2-D array %q is empty", v.Name)
		}
		width := len(v.Values[0])
		for i, row := range v.Values {
			if len(row) != width {
				return errors.AssertionFailedf(
					"2-D array %q is not rectangular: row 0 has %d items, row %d has %d",
					v.Name, width, i, len(row))
			}
		}
	case Group:
		for _, child := range v {
			if err := Validate(child); err != nil {
				return err
			}
		}
	case Namespace:
		return Validate(v.Body)
	case Ifndef:
		return Validate(v.Body)
	case Define, ConstVar, Ifdef, EnumDecl, LiteralH, LiteralC, IncludeH, IncludeSelf:
	case nil:
		return errors.AssertionFailedf("nil node in declaration tree")
	default:
		return errors.AssertionFailedf("unsupported node type %T in declaration tree", n)
	}
	return nil
}

// Render validates the tree and renders it.
func Render(n Node) (Format, error) {
	if err := Validate(n); err != nil {
		return Format{}, err
	}
	var f Format
	render(n, &f)
	return f, nil
}

func render(n Node, f *Format) {
	switch v := n.(type) {
	case Define:
		f.H += fmt.Sprintf("#define %s %s\n", v.Name, v.Value)
	case ConstVar:
		renderConstVar(v, f)
	case Array1D:
		renderArray1D(v, f)
	case Array2D:
		renderArray2D(v, f)
	case Group:
		for _, child := range v {
			render(child, f)
		}
	case Namespace:
		renderNamespace(v, f)
	case Ifdef:
		if v.Enabled {
			f.H += fmt.Sprintf("#define %s\n", v.Name)
		}
	case Ifndef:
		var inner Format
		render(v.Body, &inner)
		f.H += fmt.Sprintf("#ifndef %s\n%s#endif\n\n", v.Name, inner.H)
		f.C += inner.C
	case EnumDecl:
		renderEnum(v, f)
	case LiteralH:
		f.H += string(v)
	case LiteralC:
		f.C += string(v)
	case IncludeH:
		f.H += fmt.Sprintf("#include %s\n", v.Path)
	case IncludeSelf:
		f.C += selfIncludeMarker
	default:
		panic(fmt.Sprintf("ctree: unhandled node type %T", n))
	}
}

func renderConstVar(v ConstVar, f *Format) {
	typ := orDefault(v.Type)
	if v.IsExtern {
		f.H += fmt.Sprintf("extern const %s %s;\n", typ, v.Name)
		f.C += fmt.Sprintf("extern const %s %s = %s;\n\n", typ, v.Name, v.Value)
		return
	}
	f.C += fmt.Sprintf("const %s %s = %s;\n\n", typ, v.Name, v.Value)
}

func renderArray1D(v Array1D, f *Format) {
	typ := orDefault(v.Type)
	contents := strings.Join(wrapInBraces(chunkLines(v.Values)), "\n")
	if v.IsExtern {
		f.H += fmt.Sprintf("extern const %s %s[];\n", typ, v.Name)
		f.C += fmt.Sprintf("extern const %s %s[] = %s;\n\n", typ, v.Name, contents)
		return
	}
	f.C += fmt.Sprintf("const %s %s[] = %s;\n\n", typ, v.Name, contents)
}

func renderArray2D(v Array2D, f *Format) {
	typ := orDefault(v.Type)
	width := len(v.Values[0])

	var rows []string
	for _, row := range v.Values {
		wrapped := wrapInBraces(chunkLines(row))
		wrapped[len(wrapped)-1] = "},"
		rows = append(rows, wrapped...)
	}
	contents := strings.Join(wrapInBraces(rows), "\n")

	if v.IsExtern {
		f.H += fmt.Sprintf("extern const %s %s[][%d];\n", typ, v.Name, width)
		f.C += fmt.Sprintf("extern const %s %s[][%d] = %s;\n\n", typ, v.Name, width, contents)
		return
	}
	f.C += fmt.Sprintf("const %s %s[][%d] = %s;\n\n", typ, v.Name, width, contents)
}

func renderNamespace(v Namespace, f *Format) {
	var inner Format
	render(v.Body, &inner)
	f.H += fmt.Sprintf("namespace %s {\n\n%s\n} // namespace %s\n\n", v.Name, inner.H, v.Name)
	f.C += fmt.Sprintf("namespace %s {\n\n%s\n} // namespace %s\n\n", v.Name, inner.C, v.Name)
}

func renderEnum(v EnumDecl, f *Format) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("enum %s {\n", v.TypeName))
	for _, variant := range v.Variants {
		sb.WriteString(fmt.Sprintf("    %s,\n", variant))
	}
	sb.WriteString("};\n\n")
	f.H += sb.String()
}

// chunkLines lays values out itemsPerLine to a line, each item followed by
// a comma.
func chunkLines(values []string) []string {
	var lines []string
	for start := 0; start < len(values); start += itemsPerLine {
		end := min(start+itemsPerLine, len(values))
		lines = append(lines, strings.Join(values[start:end], ", ")+", ")
	}
	return lines
}

// wrapInBraces indents lines by one space and surrounds them with braces.
func wrapInBraces(lines []string) []string {
	out := make([]string, 0, len(lines)+2)
	out = append(out, "{")
	for _, l := range lines {
		out = append(out, " "+l)
	}
	return append(out, "}")
}

func orDefault(typ string) string {
	if typ == "" {
		return defaultType
	}
	return typ
}
