package neat

import (
	"math/rand"
	"sort"
)

// Genome is a single evolvable individual: a set of node genes, an ordered
// list of connection genes, and the innovation counter used to stamp new
// connections. Fitness is assigned externally by the evaluator;
// AdjustedFitness is derived during reproduction.
//
// The connection list order is load-bearing: Activate processes connections
// in insertion order rather than topological order, so two genomes holding
// the same genes in a different list order can compute different outputs.
// Nothing in this package reorders the list after a gene is appended.
//
// Each genome tracks its own innovation counter. Innovation numbers are
// therefore comparable between genomes of shared ancestry, not globally
// unique across independently created genomes.
type Genome struct {
	Nodes       map[int]*NodeGene
	Connections []*ConnectionGene

	InnovationCounter int
	InputSize         int
	OutputSize        int

	Fitness         float64
	AdjustedFitness float64
}

// NewGenome creates a fully connected genome: input nodes with ids
// 1..inputSize, output nodes with ids inputSize+1..inputSize+outputSize,
// and one enabled connection per (input, output) pair with a uniform
// random weight in [-1, 1]. Innovation numbers are assigned sequentially
// starting at 1.
func NewGenome(inputSize, outputSize int) *Genome {
	g := &Genome{
		Nodes:      make(map[int]*NodeGene, inputSize+outputSize),
		InputSize:  inputSize,
		OutputSize: outputSize,
	}
	for id := 1; id <= inputSize; id++ {
		g.Nodes[id] = &NodeGene{ID: id, Kind: Input}
	}
	for id := inputSize + 1; id <= inputSize+outputSize; id++ {
		g.Nodes[id] = &NodeGene{ID: id, Kind: Output}
	}
	for in := 1; in <= inputSize; in++ {
		for out := inputSize + 1; out <= inputSize+outputSize; out++ {
			g.Connections = append(g.Connections, &ConnectionGene{
				InNode:     in,
				OutNode:    out,
				Weight:     randomWeight(),
				Enabled:    true,
				Innovation: g.nextInnovation(),
			})
		}
	}
	return g
}

// Clone deep-copies the genome. The result shares no state with the
// source; mutating one never affects the other.
func (g *Genome) Clone() *Genome {
	c := &Genome{
		Nodes:             make(map[int]*NodeGene, len(g.Nodes)),
		Connections:       make([]*ConnectionGene, len(g.Connections)),
		InnovationCounter: g.InnovationCounter,
		InputSize:         g.InputSize,
		OutputSize:        g.OutputSize,
		Fitness:           g.Fitness,
		AdjustedFitness:   g.AdjustedFitness,
	}
	for id, node := range g.Nodes {
		c.Nodes[id] = node.Copy()
	}
	for i, conn := range g.Connections {
		c.Connections[i] = conn.Copy()
	}
	return c
}

// Activate runs a single feed-forward pass and returns one value per
// output node. Node accumulators start at zero; input node accumulators
// are set from inputs (extra inputs are ignored, missing inputs stay
// zero). Enabled connections are then applied in list order, each adding
// accumulator[in]*weight into accumulator[out]. Because the list is not
// topologically sorted, a connection whose source node is written later in
// the same pass reads a stale (possibly zero) value; that is the accepted
// feed-forward approximation and downstream fitness depends on it.
// Outputs are the steepened sigmoid of the output accumulators.
func (g *Genome) Activate(inputs []float64) []float64 {
	acc := make(map[int]float64, len(g.Nodes))
	for i := 0; i < g.InputSize && i < len(inputs); i++ {
		acc[i+1] = inputs[i]
	}
	for _, conn := range g.Connections {
		if !conn.Enabled {
			continue
		}
		acc[conn.OutNode] += acc[conn.InNode] * conn.Weight
	}
	outputs := make([]float64, g.OutputSize)
	for i := range outputs {
		outputs[i] = steepenedSigmoid(acc[g.InputSize+1+i])
	}
	return outputs
}

// Mutate applies one offspring-construction round of mutation: add-node
// and add-connection each fire with their configured probability, and
// weight mutation is always applied.
func (g *Genome) Mutate(cfg *Config) {
	if rand.Float64() < cfg.AddNodeProb {
		g.AddNodeMutation()
	}
	if rand.Float64() < cfg.AddConnProb {
		g.AddConnectionMutation()
	}
	g.MutateWeights(cfg.MutateWeightsProb, cfg.WeightMutationPower)
}

// AddNodeMutation splits a uniformly chosen enabled connection: the old
// connection is disabled and a new hidden node is inserted in its place,
// fed by a weight-1.0 connection and feeding out through a connection that
// inherits the old weight. Consumes two innovation numbers. No-op when the
// genome has no enabled connections.
func (g *Genome) AddNodeMutation() {
	if len(g.Connections) == 0 {
		return
	}
	enabled := make([]*ConnectionGene, 0, len(g.Connections))
	for _, conn := range g.Connections {
		if conn.Enabled {
			enabled = append(enabled, conn)
		}
	}
	if len(enabled) == 0 {
		return
	}

	split := enabled[rand.Intn(len(enabled))]
	split.Enabled = false

	node := &NodeGene{ID: g.nextNodeID(), Kind: Hidden}
	g.Nodes[node.ID] = node

	g.Connections = append(g.Connections,
		&ConnectionGene{
			InNode:     split.InNode,
			OutNode:    node.ID,
			Weight:     1.0,
			Enabled:    true,
			Innovation: g.nextInnovation(),
		},
		&ConnectionGene{
			InNode:     node.ID,
			OutNode:    split.OutNode,
			Weight:     split.Weight,
			Enabled:    true,
			Innovation: g.nextInnovation(),
		},
	)
}

// AddConnectionMutation attempts up to 100 random node pairs and appends
// an enabled connection with a random weight for the first pair that is
// valid: distinct nodes, source not an Output, target not an Input, and no
// existing connection with that exact ordered pair. Gives up silently once
// the attempts are exhausted, which bounds worst-case cost on dense
// genomes.
func (g *Genome) AddConnectionMutation() {
	ids := g.sortedNodeIDs()
	if len(ids) < 2 {
		return
	}
	for attempt := 0; attempt < 100; attempt++ {
		in := ids[rand.Intn(len(ids))]
		out := ids[rand.Intn(len(ids))]
		if in == out {
			continue
		}
		if g.Nodes[in].Kind == Output || g.Nodes[out].Kind == Input {
			continue
		}
		if g.hasConnection(in, out) {
			continue
		}
		g.Connections = append(g.Connections, &ConnectionGene{
			InNode:     in,
			OutNode:    out,
			Weight:     randomWeight(),
			Enabled:    true,
			Innovation: g.nextInnovation(),
		})
		return
	}
}

// MutateWeights visits every connection independently. With probability
// prob the weight mutates: 90% of the time it is perturbed by
// (uniform(0,1)-0.5)*power, otherwise it is replaced with a fresh uniform
// value in [-1, 1].
func (g *Genome) MutateWeights(prob, power float64) {
	for _, conn := range g.Connections {
		if rand.Float64() >= prob {
			continue
		}
		if rand.Float64() < 0.9 {
			conn.Weight += (rand.Float64() - 0.5) * power
		} else {
			conn.Weight = randomWeight()
		}
	}
}

// hasConnection reports whether a connection with the exact ordered
// (in, out) pair already exists.
func (g *Genome) hasConnection(in, out int) bool {
	for _, conn := range g.Connections {
		if conn.InNode == in && conn.OutNode == out {
			return true
		}
	}
	return false
}

// nextInnovation advances the per-genome innovation counter and returns
// the new number.
func (g *Genome) nextInnovation() int {
	g.InnovationCounter++
	return g.InnovationCounter
}

// nextNodeID returns the smallest id greater than every existing node id,
// so ids stay monotonic and are never reused within the genome.
func (g *Genome) nextNodeID() int {
	next := g.InputSize + g.OutputSize + 1
	for id := range g.Nodes {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

// sortedNodeIDs returns all node ids in ascending order, giving random
// node picks a stable underlying sequence.
func (g *Genome) sortedNodeIDs() []int {
	ids := make([]int, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// randomWeight samples a uniform connection weight in [-1, 1].
func randomWeight() float64 {
	return rand.Float64()*2 - 1
}
