// Package ctree is a small declaration tree for generated C/C++ code.
//
// A tree is plain data. Render walks it once and produces a header and a
// body text; nodes that have nothing to declare publicly (non-extern
// constants and arrays) contribute only to the body.
package ctree

// Node is one declaration. The set of node types is closed.
type Node interface {
	node()
}

// Define is a preprocessor #define with a value.
type Define struct {
	Name  string
	Value string
}

// ConstVar is a typed constant.
type ConstVar struct {
	Name     string
	Type     string
	Value    string
	IsExtern bool
}

// Array1D is a one-dimensional constant array. Type defaults to uint8_t.
type Array1D struct {
	Name     string
	Type     string
	Values   []string
	IsExtern bool
}

// Array2D is a rectangular two-dimensional constant array. Type defaults to
// uint8_t.
type Array2D struct {
	Name     string
	Type     string
	Values   [][]string
	IsExtern bool
}

// Group is a sequence of nodes rendered in order.
type Group []Node

// Namespace wraps Body in a C++ namespace in both files.
type Namespace struct {
	Name string
	Body Node
}

// Ifdef defines Name as a bare flag when Enabled, and renders nothing
// otherwise.
type Ifdef struct {
	Name    string
	Enabled bool
}

// Ifndef renders Body's header text only if Name is not yet defined.
type Ifndef struct {
	Name string
	Body Node
}

// EnumDecl declares a C enum.
type EnumDecl struct {
	TypeName string
	Variants []string
}

// LiteralH is verbatim header text.
type LiteralH string

// LiteralC is verbatim body text.
type LiteralC string

// IncludeH is an #include in the header. Path carries its own quotes or
// angle brackets.
type IncludeH struct {
	Path string
}

// IncludeSelf makes the body include its own header. The header name is
// only known when the files are named, see Format.Files.
type IncludeSelf struct{}

func (Define) node()      {}
func (ConstVar) node()    {}
func (Array1D) node()     {}
func (Array2D) node()     {}
func (Group) node()       {}
func (Namespace) node()   {}
func (Ifdef) node()       {}
func (Ifndef) node()      {}
func (EnumDecl) node()    {}
func (LiteralH) node()    {}
func (LiteralC) node()    {}
func (IncludeH) node()    {}
func (IncludeSelf) node() {}
