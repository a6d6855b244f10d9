package neat

import "math/rand"

// Crossover combines two parent genomes into a child. The fitter parent
// is dominant; on equal fitness the first argument stays dominant (the
// comparison only swaps on a strictly greater second parent). The child
// inherits every node from the dominant parent, and its innovation counter
// is the maximum of both parents'. Connection genes are then aligned by
// innovation number: matching genes are inherited from either parent with
// equal probability, genes present only in the dominant parent are always
// inherited, and genes present only in the weaker parent are always
// dropped.
func Crossover(parentA, parentB *Genome) *Genome {
	dominant, other := parentA, parentB
	if parentB.Fitness > parentA.Fitness {
		dominant, other = parentB, parentA
	}

	child := &Genome{
		Nodes:             make(map[int]*NodeGene, len(dominant.Nodes)),
		InnovationCounter: maxInt(parentA.InnovationCounter, parentB.InnovationCounter),
		InputSize:         dominant.InputSize,
		OutputSize:        dominant.OutputSize,
	}
	for id, node := range dominant.Nodes {
		child.Nodes[id] = node.Copy()
	}

	dominantGenes := genesByInnovation(dominant)
	otherGenes := genesByInnovation(other)

	for innovation := 1; innovation <= child.InnovationCounter; innovation++ {
		dGene, dOK := dominantGenes[innovation]
		if !dOK {
			continue
		}
		if oGene, oOK := otherGenes[innovation]; oOK && rand.Float64() < 0.5 {
			child.Connections = append(child.Connections, oGene.Copy())
			continue
		}
		child.Connections = append(child.Connections, dGene.Copy())
	}
	return child
}

// genesByInnovation indexes a genome's connections by innovation number.
// Innovation numbers are unique within one genome's connection set.
func genesByInnovation(g *Genome) map[int]*ConnectionGene {
	genes := make(map[int]*ConnectionGene, len(g.Connections))
	for _, conn := range g.Connections {
		genes[conn.Innovation] = conn
	}
	return genes
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
