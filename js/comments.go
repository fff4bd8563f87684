package js

// commentWindow is a run of whitespace containing comments. The node ending where the window starts precedes it,
// the node starting where it ends follows it, and the smallest node enclosing it contains it.
type commentWindow struct {
	start, end     int
	comments       []*Comment
	leadingNode    Node // node before the window, its trailing comments
	trailingNode   Node // node after the window, its leading comments
	containingNode Node
}

func (p *Parser) pushCommentWindow(start, end int, comments []*Comment) {
	p.s.commentStack = append(p.s.commentStack, commentWindow{
		start:    start,
		end:      end,
		comments: comments,
	})
}

// processComment is called for every finished node and assigns the node to the windows around and inside it. Windows
// inside the node are final once the node is finished.
func (p *Parser) processComment(n Node) {
	stack := p.s.commentStack
	i := len(stack) - 1
	if i < 0 {
		return
	}
	base := n.Base()
	if stack[i].start == base.End.Index {
		stack[i].leadingNode = n
		i--
	}
	for ; 0 <= i; i-- {
		w := &stack[i]
		if base.Start.Index < w.end {
			w.containingNode = n
			p.finalizeComment(*w)
			stack = append(stack[:i], stack[i+1:]...)
		} else {
			if w.end == base.Start.Index {
				w.trailingNode = n
			}
			break
		}
	}
	p.s.commentStack = stack
}

func (p *Parser) finalizeComment(w commentWindow) {
	if !isNil(w.leadingNode) || !isNil(w.trailingNode) {
		if !isNil(w.leadingNode) {
			p.setTrailingComments(w.leadingNode, w.comments)
		}
		if !isNil(w.trailingNode) {
			p.setLeadingComments(w.trailingNode, w.comments)
		}
		return
	}

	n := w.containingNode
	if isNil(n) {
		return
	}
	if 0 < w.start && p.src[w.start-1] == ',' {
		// after a trailing comma the comments belong to the last element
		var elements []Node
		switch n := n.(type) {
		case *ObjectExpression:
			elements = asNodes(n.Properties)
		case *ObjectPattern:
			elements = asNodes(n.Properties)
		case *RecordExpression:
			elements = asNodes(n.Properties)
		case *ArrayExpression:
			elements = asNodes(n.Elements)
		case *ArrayPattern:
			elements = asNodes(n.Elements)
		case *TupleExpression:
			elements = asNodes(n.Elements)
		case *CallExpression:
			elements = asNodes(n.Arguments)
		case *NewExpression:
			elements = asNodes(n.Arguments)
		case *FunctionDeclaration:
			elements = asNodes(n.Params)
		case *FunctionExpression:
			elements = asNodes(n.Params)
		case *ArrowFunctionExpression:
			elements = asNodes(n.Params)
		case *ClassMethod:
			elements = asNodes(n.Params)
		case *ObjectMethod:
			elements = asNodes(n.Params)
		case *ImportDeclaration:
			elements = asNodes(n.Specifiers)
		case *ExportNamedDeclaration:
			elements = asNodes(n.Specifiers)
		case *TSEnumDeclaration:
			elements = asNodes(n.Members)
		case *TSTypeParameterDeclaration:
			elements = asNodes(n.Params)
		case *TSTypeParameterInstantiation:
			elements = asNodes(n.Params)
		case *TSTupleType:
			elements = asNodes(n.ElementTypes)
		default:
			p.setInnerComments(n, w.comments)
			return
		}
		p.adjustInnerComments(n, elements, w)
		return
	}
	p.setInnerComments(n, w.comments)
}

func asNodes[T Node](list []T) []Node {
	ns := make([]Node, len(list))
	for i, n := range list {
		ns[i] = n
	}
	return ns
}

func (p *Parser) adjustInnerComments(n Node, elements []Node, w commentWindow) {
	var last Node
	for i := len(elements) - 1; 0 <= i && isNil(last); i-- {
		last = elements[i]
	}
	if isNil(last) || w.start < last.Base().Start.Index {
		p.setInnerComments(n, w.comments)
	} else {
		p.setTrailingComments(last, w.comments)
	}
}

// finalizeRemainingComments attaches the windows that are still open at the end of the input.
func (p *Parser) finalizeRemainingComments() {
	for i := len(p.s.commentStack) - 1; 0 <= i; i-- {
		p.finalizeComment(p.s.commentStack[i])
	}
	p.s.commentStack = nil
}

// resetPreviousNodeTrailingComments unlinks n from the last window, used when n is absorbed by a later node.
func (p *Parser) resetPreviousNodeTrailingComments(n Node) {
	if i := len(p.s.commentStack) - 1; 0 <= i && p.s.commentStack[i].leadingNode == n {
		p.s.commentStack[i].leadingNode = nil
	}
}

// takeSurroundingComments links the windows at the edges of start and end to n, for nodes without children.
func (p *Parser) takeSurroundingComments(n Node, start, end int) {
	for i := len(p.s.commentStack) - 1; 0 <= i; i-- {
		w := &p.s.commentStack[i]
		if w.start == end {
			w.leadingNode = n
		} else if w.end == start {
			w.trailingNode = n
		} else if w.end < start {
			break
		}
	}
}

// replaceCommentNode points the windows that reference old to n, used when a node is rebuilt as a pattern.
func (p *Parser) replaceCommentNode(old, n Node) {
	for i := range p.s.commentStack {
		w := &p.s.commentStack[i]
		if w.leadingNode == old {
			w.leadingNode = n
		}
		if w.trailingNode == old {
			w.trailingNode = n
		}
		if w.containingNode == old {
			w.containingNode = n
		}
	}
}

func (p *Parser) setLeadingComments(n Node, comments []*Comment) {
	base := n.Base()
	old := base.Leading
	base.Leading = append(append([]*Comment{}, comments...), old...)
	p.record(func() { base.Leading = old })
}

func (p *Parser) setTrailingComments(n Node, comments []*Comment) {
	base := n.Base()
	old := base.Trailing
	base.Trailing = append(append([]*Comment{}, comments...), old...)
	p.record(func() { base.Trailing = old })
}

func (p *Parser) setInnerComments(n Node, comments []*Comment) {
	base := n.Base()
	old := base.Inner
	base.Inner = append(append([]*Comment{}, comments...), old...)
	p.record(func() { base.Inner = old })
}
