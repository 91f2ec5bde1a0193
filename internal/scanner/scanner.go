// Package scanner implements the ZFX register allocator: it walks the flat
// IR array produced by the lowerer and assigns each node a virtual register,
// while also recording the dependency edges a future liveness pass would
// need.
//
// The allocation policy is deliberately non-optimizing: one register per IR
// node, numerically equal to the node's index. Nothing here reuses a
// register once its value is dead. The dependency multimap is collected
// anyway so that a later liveness/coalescing pass has the data it needs
// without this package knowing what that pass looks like.
package scanner

import "github.com/sonicyouth98/poczfx/internal/ir"

// RegId identifies a virtual register. In this version RegId(i) always maps
// 1:1 to ir.Id(i).
type RegId uint32

// Scan assigns a register to every IR node and collects, for every IROp
// node, an edge from its own index to each of its argument indices.
func Scan(nodes []ir.Node) (regs []RegId, deps map[ir.Id][]ir.Id) {
	regs = make([]RegId, len(nodes))
	for i := range nodes {
		regs[i] = RegId(i)
	}

	deps = make(map[ir.Id][]ir.Id)
	for i, n := range nodes {
		if n.Kind != ir.KindOp || len(n.Args) == 0 {
			continue
		}
		id := ir.Id(i)
		deps[id] = append(deps[id], n.Args...)
	}

	return regs, deps
}
