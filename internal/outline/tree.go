package outline

// BuildTree assembles a repaired heading sequence into a bookmark tree.
// It keeps a stack of (level, node) pairs describing the path from the
// virtual root to the most recently inserted node: entries at or below the
// incoming heading's level are popped, the new top (or the root) becomes
// the parent, and the heading is appended as its last child.
//
// BuildTree is total over any sequence Repair produces. Node levels in the
// result are tree depths (parent + 1), which may be shallower than the
// heading's detected level when the document never opened the levels in
// between.
func BuildTree(headings []Heading) *Node {
	root := &Node{}

	type frame struct {
		level int
		node  *Node
	}
	var stack []frame

	for _, h := range headings {
		for len(stack) > 0 && stack[len(stack)-1].level >= h.Level {
			stack = stack[:len(stack)-1]
		}
		parent := root
		if len(stack) > 0 {
			parent = stack[len(stack)-1].node
		}
		n := &Node{
			Title: h.Title,
			Page:  h.Page,
			Level: parent.Level + 1,
		}
		parent.Children = append(parent.Children, n)
		stack = append(stack, frame{level: h.Level, node: n})
	}
	return root
}
