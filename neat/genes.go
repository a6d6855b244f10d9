package neat

import "fmt"

// NodeKind identifies the role of a node within the network.
type NodeKind int

const (
	Input NodeKind = iota
	Hidden
	Output
)

// String returns the serialized label for the node kind.
func (k NodeKind) String() string {
	switch k {
	case Input:
		return "input"
	case Hidden:
		return "hidden"
	case Output:
		return "output"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// ParseNodeKind maps a serialized kind label back to a NodeKind.
func ParseNodeKind(s string) (NodeKind, error) {
	switch s {
	case "input":
		return Input, nil
	case "hidden":
		return Hidden, nil
	case "output":
		return Output, nil
	}
	return 0, fmt.Errorf("unknown node kind: %q", s)
}

// NodeGene represents a single neuron in a genome. Identity is the ID;
// ids are assigned monotonically within a genome and never reused.
type NodeGene struct {
	ID   int
	Kind NodeKind
}

// Copy creates an independent copy of the NodeGene.
func (ng *NodeGene) Copy() *NodeGene {
	c := *ng
	return &c
}

// String returns a string representation of the NodeGene.
func (ng *NodeGene) String() string {
	return fmt.Sprintf("NodeGene(ID: %d, Kind: %s)", ng.ID, ng.Kind)
}

// ConnectionGene represents a weighted, directed connection between two
// nodes. Innovation is a lineage marker: connections carrying the same
// innovation number in two genomes descend from the same historical
// mutation event, which is what makes gene alignment during crossover and
// distance computation meaningful.
type ConnectionGene struct {
	InNode     int
	OutNode    int
	Weight     float64
	Enabled    bool
	Innovation int
}

// Copy creates an independent copy of the ConnectionGene.
func (cg *ConnectionGene) Copy() *ConnectionGene {
	c := *cg
	return &c
}

// String returns a string representation of the ConnectionGene.
func (cg *ConnectionGene) String() string {
	return fmt.Sprintf("ConnGene(%d->%d, Weight: %.3f, Enabled: %t, Innovation: %d)",
		cg.InNode, cg.OutNode, cg.Weight, cg.Enabled, cg.Innovation)
}
