package graph

import (
	"prismslice/internal/extract"
	"prismslice/internal/model"
)

// BuildMDGVertices emits one coarse-grained vertex per module (in AST
// order) plus a final sentinel vertex named model.GlobalSentinel
// aggregating the program's global declarations, constants, formulas,
// and any variables referenced by the initial-states construct. The
// global vertex's Act is always empty.
func BuildMDGVertices(p *model.Program) []*ModuleVertex {
	verts := make([]*ModuleVertex, 0, len(p.Modules)+1)
	for i := range p.Modules {
		m := &p.Modules[i]
		verts = append(verts, &ModuleVertex{
			Name: m.Name,
			Def:  extract.ModuleDefs(m),
			Ref:  extract.ModuleRefs(m),
			Act:  extract.ModuleActions(m),
		})
	}
	verts = append(verts, &ModuleVertex{
		Name: model.GlobalSentinel,
		Def:  extract.GlobalDefs(p),
		Ref:  extract.GlobalRefs(p),
		Act:  map[string]struct{}{},
	})
	return verts
}
