// Package topology supplies the static structure of the network under
// visualization: ordered node and link identifiers, drawing coordinates
// and time-invariant link properties such as pipe diameter.
package topology

import (
	"errors"
	"fmt"
)

// Sentinel errors for network construction and lookups
var (
	ErrNoNodes         = errors.New("network has no nodes")
	ErrDuplicateID     = errors.New("duplicate identifier")
	ErrUnknownEndpoint = errors.New("link references unknown node")
	ErrLinkNotFound    = errors.New("link not found")
)

// Position is a 2D drawing coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a junction-type network element (junction, tank, reservoir).
type Node struct {
	ID  string
	Pos Position
}

// Link is a pipe-type network element (pipe, pump, valve) connecting
// two nodes. Diameter is a static property with no time axis.
type Link struct {
	ID       string
	FromNode string
	ToNode   string
	Diameter float64
}

// Network is an immutable topology snapshot. Node and link order is
// fixed at construction and defines the entity order of every frame
// series built from it.
type Network struct {
	nodes     []Node
	links     []Link
	linkIndex map[string]int
}

// NewNetwork builds a network from ordered node and link lists.
// Identifiers must be unique per kind and link endpoints must name
// existing nodes.
func NewNetwork(nodes []Node, links []Link) (*Network, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}

	nodeIDs := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if _, dup := nodeIDs[n.ID]; dup {
			return nil, fmt.Errorf("%w: node %q", ErrDuplicateID, n.ID)
		}
		nodeIDs[n.ID] = struct{}{}
	}

	linkIndex := make(map[string]int, len(links))
	for i, l := range links {
		if _, dup := linkIndex[l.ID]; dup {
			return nil, fmt.Errorf("%w: link %q", ErrDuplicateID, l.ID)
		}
		if _, ok := nodeIDs[l.FromNode]; !ok {
			return nil, fmt.Errorf("%w: link %q from %q", ErrUnknownEndpoint, l.ID, l.FromNode)
		}
		if _, ok := nodeIDs[l.ToNode]; !ok {
			return nil, fmt.Errorf("%w: link %q to %q", ErrUnknownEndpoint, l.ID, l.ToNode)
		}
		linkIndex[l.ID] = i
	}

	return &Network{
		nodes:     append([]Node(nil), nodes...),
		links:     append([]Link(nil), links...),
		linkIndex: linkIndex,
	}, nil
}

// NodeIDs returns the node identifiers in topology order.
func (n *Network) NodeIDs() []string {
	ids := make([]string, len(n.nodes))
	for i, node := range n.nodes {
		ids[i] = node.ID
	}
	return ids
}

// LinkIDs returns the link identifiers in topology order.
func (n *Network) LinkIDs() []string {
	ids := make([]string, len(n.links))
	for i, l := range n.links {
		ids[i] = l.ID
	}
	return ids
}

// Positions returns the node coordinate map used for drawing.
func (n *Network) Positions() map[string]Position {
	pos := make(map[string]Position, len(n.nodes))
	for _, node := range n.nodes {
		pos[node.ID] = node.Pos
	}
	return pos
}

// Endpoints returns the (from, to) node pair per link, in topology
// order. This is the edge list a renderer draws.
func (n *Network) Endpoints() [][2]string {
	eps := make([][2]string, len(n.links))
	for i, l := range n.links {
		eps[i] = [2]string{l.FromNode, l.ToNode}
	}
	return eps
}

// Diameters returns the per-link diameters in topology order.
func (n *Network) Diameters() []float64 {
	ds := make([]float64, len(n.links))
	for i, l := range n.links {
		ds[i] = l.Diameter
	}
	return ds
}

// Link looks a link up by identifier.
func (n *Network) Link(id string) (Link, error) {
	i, ok := n.linkIndex[id]
	if !ok {
		return Link{}, fmt.Errorf("%w: %q", ErrLinkNotFound, id)
	}
	return n.links[i], nil
}

// NodeCount returns the number of nodes.
func (n *Network) NodeCount() int { return len(n.nodes) }

// LinkCount returns the number of links.
func (n *Network) LinkCount() int { return len(n.links) }
