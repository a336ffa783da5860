package main

import (
	"os"

	"prismslice/internal/clierr"
	"prismslice/internal/graph"
	"prismslice/internal/model"
	"prismslice/internal/prismfile"
)

// loadProgram reads and parses the model at path.
func loadProgram(path string) (*model.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, clierr.Wrap(clierr.IoError, err, "reading %s", path)
	}
	prog, err := prismfile.Parse(string(data))
	if err != nil {
		return nil, err
	}
	return prog, nil
}

// graphs bundles both dependence-graph granularities built from one
// program, so every slicing subcommand builds them exactly once.
type graphs struct {
	cverts []*graph.Vertex
	cadj   [][]int
	mverts []*graph.ModuleVertex
	madj   [][]int
}

func buildGraphs(p *model.Program) *graphs {
	cverts := graph.BuildCDGVertices(p)
	mverts := graph.BuildMDGVertices(p)
	return &graphs{
		cverts: cverts,
		cadj:   graph.BuildCDGEdges(cverts, p),
		mverts: mverts,
		madj:   graph.BuildMDGEdges(mverts),
	}
}
