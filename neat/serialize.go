package neat

import (
	"encoding/json"
	"fmt"
)

// genomeRecord is the self-describing serialized shape of a genome. Node
// order in the record is incidental (nodes are rebuilt by id), but
// connection order is significant and must round-trip exactly: Activate's
// semantics depend on it.
type genomeRecord struct {
	Nodes             []nodeRecord       `json:"nodes"`
	Connections       []connectionRecord `json:"connections"`
	InnovationCounter int                `json:"innovationCounter"`
	InputSize         int                `json:"inputSize"`
	OutputSize        int                `json:"outputSize"`
	Fitness           float64            `json:"fitness"`
	AdjustedFitness   float64            `json:"adjustedFitness"`
}

type nodeRecord struct {
	ID   int    `json:"id"`
	Kind string `json:"kind"`
}

type connectionRecord struct {
	InNode     int     `json:"inNode"`
	OutNode    int     `json:"outNode"`
	Weight     float64 `json:"weight"`
	Enabled    bool    `json:"enabled"`
	Innovation int     `json:"innovation"`
}

// Serialize encodes the genome as a JSON record. Nodes are emitted in
// ascending id order; connections in their list order.
func Serialize(g *Genome) ([]byte, error) {
	record := genomeRecord{
		Nodes:             make([]nodeRecord, 0, len(g.Nodes)),
		Connections:       make([]connectionRecord, 0, len(g.Connections)),
		InnovationCounter: g.InnovationCounter,
		InputSize:         g.InputSize,
		OutputSize:        g.OutputSize,
		Fitness:           g.Fitness,
		AdjustedFitness:   g.AdjustedFitness,
	}
	for _, id := range g.sortedNodeIDs() {
		record.Nodes = append(record.Nodes, nodeRecord{ID: id, Kind: g.Nodes[id].Kind.String()})
	}
	for _, conn := range g.Connections {
		record.Connections = append(record.Connections, connectionRecord{
			InNode:     conn.InNode,
			OutNode:    conn.OutNode,
			Weight:     conn.Weight,
			Enabled:    conn.Enabled,
			Innovation: conn.Innovation,
		})
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode genome: %w", err)
	}
	return data, nil
}

// Deserialize reconstructs a genome from a serialized record. A malformed
// record fails fast with an error and no partial genome: dangling node
// references, duplicate ids or innovation numbers, unknown kinds, node
// counts that disagree with the declared network shape, and connections
// out of an Output or into an Input are all rejected.
func Deserialize(data []byte) (*Genome, error) {
	var record genomeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode genome record: %w", err)
	}

	if record.InputSize <= 0 || record.OutputSize <= 0 {
		return nil, fmt.Errorf("genome record: inputSize and outputSize must be positive")
	}

	g := &Genome{
		Nodes:             make(map[int]*NodeGene, len(record.Nodes)),
		Connections:       make([]*ConnectionGene, 0, len(record.Connections)),
		InnovationCounter: record.InnovationCounter,
		InputSize:         record.InputSize,
		OutputSize:        record.OutputSize,
		Fitness:           record.Fitness,
		AdjustedFitness:   record.AdjustedFitness,
	}

	inputs, outputs := 0, 0
	for _, nr := range record.Nodes {
		kind, err := ParseNodeKind(nr.Kind)
		if err != nil {
			return nil, fmt.Errorf("genome record: node %d: %w", nr.ID, err)
		}
		if _, exists := g.Nodes[nr.ID]; exists {
			return nil, fmt.Errorf("genome record: duplicate node id %d", nr.ID)
		}
		g.Nodes[nr.ID] = &NodeGene{ID: nr.ID, Kind: kind}
		switch kind {
		case Input:
			inputs++
		case Output:
			outputs++
		}
	}
	if inputs != record.InputSize {
		return nil, fmt.Errorf("genome record: %d input nodes, expected %d", inputs, record.InputSize)
	}
	if outputs != record.OutputSize {
		return nil, fmt.Errorf("genome record: %d output nodes, expected %d", outputs, record.OutputSize)
	}

	seenInnovations := make(map[int]bool, len(record.Connections))
	for _, cr := range record.Connections {
		in, ok := g.Nodes[cr.InNode]
		if !ok {
			return nil, fmt.Errorf("genome record: connection %d references unknown inNode %d", cr.Innovation, cr.InNode)
		}
		out, ok := g.Nodes[cr.OutNode]
		if !ok {
			return nil, fmt.Errorf("genome record: connection %d references unknown outNode %d", cr.Innovation, cr.OutNode)
		}
		if in.Kind == Output {
			return nil, fmt.Errorf("genome record: connection %d originates from output node %d", cr.Innovation, cr.InNode)
		}
		if out.Kind == Input {
			return nil, fmt.Errorf("genome record: connection %d targets input node %d", cr.Innovation, cr.OutNode)
		}
		if seenInnovations[cr.Innovation] {
			return nil, fmt.Errorf("genome record: duplicate innovation number %d", cr.Innovation)
		}
		seenInnovations[cr.Innovation] = true

		g.Connections = append(g.Connections, &ConnectionGene{
			InNode:     cr.InNode,
			OutNode:    cr.OutNode,
			Weight:     cr.Weight,
			Enabled:    cr.Enabled,
			Innovation: cr.Innovation,
		})
	}
	return g, nil
}
