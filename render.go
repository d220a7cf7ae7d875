package willowui

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandRect  CommandType = iota // filled rectangle, optional border
	CommandImage                    // DrawImage of a node's image
	CommandText                     // text/v2 lines of a TextBlock
)

// RenderCommand is a single draw instruction emitted during scene traversal.
type RenderCommand struct {
	Type        CommandType
	Transform   [6]float64
	Color       Color // straight alpha, already multiplied by world alpha
	RenderLayer uint8
	node        *Node
	treeOrder   int // assigned during traversal for stable sort
}

// traverse walks the node tree depth-first, updating transforms and emitting
// render commands for visible nodes.
func (s *Scene) traverse(n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool, treeOrder *int) {
	if !n.Visible {
		return
	}

	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	if n.worldAlpha > 0 {
		switch n.Type {
		case NodeTypeRect:
			if n.Width > 0 && n.Height > 0 {
				s.emit(CommandRect, n, n.Color, treeOrder)
			}
		case NodeTypeImage:
			if n.Image != nil {
				s.emit(CommandImage, n, n.Color, treeOrder)
			}
		case NodeTypeText:
			if tb := n.TextBlock; tb != nil && tb.Font != nil && tb.Content != "" {
				s.emit(CommandText, n, tb.Color.Mul(n.Color), treeOrder)
			}
		}
	}

	for _, child := range n.orderedChildren() {
		s.traverse(child, n.worldTransform, n.worldAlpha, recompute, treeOrder)
	}
}

func (s *Scene) emit(typ CommandType, n *Node, c Color, treeOrder *int) {
	*treeOrder++
	c.A *= n.worldAlpha
	s.commands = append(s.commands, RenderCommand{
		Type:        typ,
		Transform:   n.worldTransform,
		Color:       c,
		RenderLayer: n.RenderLayer,
		node:        n,
		treeOrder:   *treeOrder,
	})
}

// commandLessOrEqual returns true if a should sort before or at the same
// position as b. Using <= for treeOrder keeps the sort stable.
func commandLessOrEqual(a, b *RenderCommand) bool {
	if a.RenderLayer != b.RenderLayer {
		return a.RenderLayer < b.RenderLayer
	}
	return a.treeOrder <= b.treeOrder
}

// mergeSort sorts s.commands in-place using s.sortBuf as scratch space.
// Bottom-up merge sort: no allocations once sortBuf reaches its high-water mark.
func (s *Scene) mergeSort() {
	n := len(s.commands)
	if n <= 1 {
		return
	}
	if cap(s.sortBuf) < n {
		s.sortBuf = make([]RenderCommand, n)
	}
	s.sortBuf = s.sortBuf[:n]

	a := s.commands
	b := s.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(s.commands, s.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []RenderCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:hi])
}
