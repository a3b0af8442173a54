package navigation

import "github.com/RacoonMediaServer/rms-catalog/internal/model"

// NodeType tells which scope a drill level narrows
type NodeType int

const (
	NodeCategory NodeType = iota
	NodeSeries
	NodeSeason
)

// Node is one drill level on the breadcrumb path. PriorQuery and
// PriorViewMode capture the browsing context right before the drill so a pop
// can restore it verbatim.
type Node struct {
	ID            int64
	DisplayName   string
	Type          NodeType
	PriorQuery    string
	PriorViewMode *model.ViewMode
}

// Stack owns the ordered drill-down path. Nodes exist only between a push and
// the matching pop or an explicit clear.
type Stack struct {
	nodes []*Node
}

func NewStack() *Stack {
	return &Stack{}
}

func (s *Stack) Push(n *Node) {
	s.nodes = append(s.nodes, n)
}

// Pop removes and returns the innermost node, nil when the stack is empty.
// The caller uses the node type to decide which scope field to clear and the
// prior fields to restore the outer context.
func (s *Stack) Pop() *Node {
	if len(s.nodes) == 0 {
		return nil
	}
	n := s.nodes[len(s.nodes)-1]
	s.nodes = s.nodes[:len(s.nodes)-1]
	return n
}

// Peek returns the innermost node without removing it.
func (s *Stack) Peek() *Node {
	if len(s.nodes) == 0 {
		return nil
	}
	return s.nodes[len(s.nodes)-1]
}

func (s *Stack) HasNodes() bool {
	return len(s.nodes) > 0
}

func (s *Stack) Len() int {
	return len(s.nodes)
}

// Path returns the display names from the outermost to the innermost level.
func (s *Stack) Path() []string {
	path := make([]string, len(s.nodes))
	for i, n := range s.nodes {
		path[i] = n.DisplayName
	}
	return path
}

func (s *Stack) Clear() {
	s.nodes = nil
}
