package expr

import "sync"

// Node pools for reducing allocations during parsing. Using sync.Pool allows
// reusing nodes across parse operations, which reduces GC pressure when
// expressions are evaluated in a tight loop.

var (
	literalPool = sync.Pool{
		New: func() interface{} { return &Literal{} },
	}
	binaryExprPool = sync.Pool{
		New: func() interface{} { return &BinaryExpr{} },
	}
	unaryExprPool = sync.Pool{
		New: func() interface{} { return &UnaryExpr{} },
	}
)

// AcquireLiteral gets a Literal from the pool
func AcquireLiteral() *Literal {
	v := literalPool.Get()
	if node, ok := v.(*Literal); ok {
		return node
	}
	return &Literal{}
}

// ReleaseLiteral returns a Literal to the pool after clearing it
func ReleaseLiteral(e *Literal) {
	if e == nil {
		return
	}
	e.Value = Value{}
	literalPool.Put(e)
}

// AcquireBinaryExpr gets a BinaryExpr from the pool
func AcquireBinaryExpr() *BinaryExpr {
	v := binaryExprPool.Get()
	if node, ok := v.(*BinaryExpr); ok {
		return node
	}
	return &BinaryExpr{}
}

// ReleaseBinaryExpr returns a BinaryExpr to the pool after clearing it
func ReleaseBinaryExpr(e *BinaryExpr) {
	if e == nil {
		return
	}
	e.Op = 0
	e.Left = nil
	e.Right = nil
	binaryExprPool.Put(e)
}

// AcquireUnaryExpr gets a UnaryExpr from the pool
func AcquireUnaryExpr() *UnaryExpr {
	v := unaryExprPool.Get()
	if node, ok := v.(*UnaryExpr); ok {
		return node
	}
	return &UnaryExpr{}
}

// ReleaseUnaryExpr returns a UnaryExpr to the pool after clearing it
func ReleaseUnaryExpr(e *UnaryExpr) {
	if e == nil {
		return
	}
	e.Op = 0
	e.Operand = nil
	unaryExprPool.Put(e)
}

// ReleaseNode returns a node and all of its children to their pools.
// Safe to call with nil. Trees must not be used after release.
func ReleaseNode(node Node) {
	switch n := node.(type) {
	case *Literal:
		ReleaseLiteral(n)
	case *BinaryExpr:
		ReleaseNode(n.Left)
		ReleaseNode(n.Right)
		ReleaseBinaryExpr(n)
	case *UnaryExpr:
		ReleaseNode(n.Operand)
		ReleaseUnaryExpr(n)
	}
}
