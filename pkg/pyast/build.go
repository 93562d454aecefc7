package pyast

// The constructors below are what parser adapters use to assemble trees.

type base struct {
	kind     Kind
	pos      Position
	children []Node
}

func (b *base) Kind() Kind       { return b.kind }
func (b *base) Pos() Position    { return b.pos }
func (b *base) Children() []Node { return b.children }

type call struct {
	base
	fn   Node
	args []Node
}

func (c *call) Func() Node   { return c.fn }
func (c *call) Args() []Node { return c.args }

type assign struct {
	base
	targets []Node
	value   Node
}

func (a *assign) Targets() []Node { return a.targets }
func (a *assign) Value() Node     { return a.value }

type keyword struct {
	base
	arg   string
	value Node
}

func (k *keyword) Arg() string { return k.arg }
func (k *keyword) Value() Node { return k.value }

type name struct {
	base
	ident string
}

func (n *name) Ident() string { return n.ident }

type constant struct {
	base
	value    string
	isString bool
}

func (c *constant) Literal() (string, bool) { return c.value, c.isString }

type sequence struct {
	base
}

func (s *sequence) Elts() []Node { return s.children }

// NewModule returns the root node holding top-level statements.
func NewModule(body ...Node) Node {
	return &base{kind: KindModule, pos: Position{Line: 1}, children: body}
}

// NewOther returns an opaque node that is only traversed.
func NewOther(pos Position, children ...Node) Node {
	return &base{kind: KindOther, pos: pos, children: children}
}

// NewCall returns a call of fn with the given arguments.
func NewCall(pos Position, fn Node, args ...Node) Call {
	children := append([]Node{fn}, args...)
	return &call{base: base{kind: KindCall, pos: pos, children: children}, fn: fn, args: args}
}

// NewAssign returns an assignment of value to targets.
func NewAssign(pos Position, targets []Node, value Node) Assign {
	children := append(append([]Node{}, targets...), value)
	return &assign{base: base{kind: KindAssign, pos: pos, children: children}, targets: targets, value: value}
}

// NewKeyword returns the keyword argument arg=value.
func NewKeyword(pos Position, arg string, value Node) Keyword {
	return &keyword{base: base{kind: KindKeyword, pos: pos, children: []Node{value}}, arg: arg, value: value}
}

// NewName returns an identifier reference.
func NewName(pos Position, ident string) Name {
	return &name{base: base{kind: KindName, pos: pos}, ident: ident}
}

// NewString returns a text literal.
func NewString(pos Position, value string) Const {
	return &constant{base: base{kind: KindConst, pos: pos}, value: value, isString: true}
}

// NewScalar returns a non-text literal (number, bool, None, bytes) carrying
// its source text.
func NewScalar(pos Position, text string) Const {
	return &constant{base: base{kind: KindConst, pos: pos}, value: text}
}

// NewList returns a list display.
func NewList(pos Position, elts ...Node) Sequence {
	return &sequence{base: base{kind: KindList, pos: pos, children: elts}}
}

// NewTuple returns a tuple display.
func NewTuple(pos Position, elts ...Node) Sequence {
	return &sequence{base: base{kind: KindTuple, pos: pos, children: elts}}
}
