package scene

import (
	"github.com/vovakirdan/tui-spawner/internal/core"
	"github.com/vovakirdan/tui-spawner/internal/spawner"
)

// Node is a positioned, rotatable scene-graph parent. A spawner uses it as
// its own transform; entities adopted by the node keep their world placement
// at adoption time and follow the node when it moves or turns afterwards.
type Node struct {
	world    *World
	position core.Vec3
	rotation core.Quat
	children []spawner.Handle
}

// NewNode creates a node in w.
func (w *World) NewNode(pos core.Vec3, rot core.Quat) *Node {
	return &Node{world: w, position: pos, rotation: rot}
}

// Position implements spawner.Transform.
func (n *Node) Position() core.Vec3 {
	return n.position
}

// Rotation implements spawner.Transform.
func (n *Node) Rotation() core.Quat {
	return n.rotation
}

// Adopt implements spawner.Parent. Dead handles are ignored and an entity
// already parented elsewhere is moved to this node.
func (n *Node) Adopt(h spawner.Handle) {
	s := n.world.lookup(h)
	if s == nil {
		return
	}
	if old := s.entity.Parent; old != nil && old != n {
		old.release(h)
	}
	if s.entity.Parent != n {
		s.entity.Parent = n
		n.children = append(n.children, h)
	}
}

// Children returns the live children, in adoption order.
func (n *Node) Children() []spawner.Handle {
	n.prune()
	out := make([]spawner.Handle, len(n.children))
	copy(out, n.children)
	return out
}

// SetPosition moves the node and carries its children by the same offset.
func (n *Node) SetPosition(p core.Vec3) {
	delta := p.Sub(n.position)
	n.position = p
	if delta.IsZero() {
		return
	}
	n.prune()
	for _, h := range n.children {
		s := n.world.lookup(h)
		s.entity.Position = s.entity.Position.Add(delta)
	}
}

// SetRotation turns the node and swings its children around the node's
// position by the same relative rotation.
func (n *Node) SetRotation(q core.Quat) {
	delta := q.Mul(n.rotation.Conjugate())
	n.rotation = q
	n.prune()
	for _, h := range n.children {
		s := n.world.lookup(h)
		offset := s.entity.Position.Sub(n.position)
		s.entity.Position = n.position.Add(delta.Rotate(offset))
		s.entity.Rotation = delta.Mul(s.entity.Rotation)
	}
}

func (n *Node) release(h spawner.Handle) {
	for i, c := range n.children {
		if c == h {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// prune forgets children that were destroyed.
func (n *Node) prune() {
	kept := n.children[:0]
	for _, h := range n.children {
		if n.world.IsAlive(h) {
			kept = append(kept, h)
		}
	}
	n.children = kept
}

var (
	_ spawner.Transform = (*Node)(nil)
	_ spawner.Parent    = (*Node)(nil)
)
