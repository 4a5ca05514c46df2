package mapio

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/campusnav/core"
)

// DecodeYAML reads the YAML rendition of the map document:
//
//	nodes:
//	  gate: {x: 0, y: 0, z: 0, label: Main Gate}
//	edges:
//	  - [gate, library, 12.5]
//
// Mapping order is preserved exactly as in Decode.
func DecodeYAML(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := resolve(opts)
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, core.ErrNoLandmarks
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level is not a mapping", ErrMalformedDocument)
	}

	var (
		nodes []keyedNode
		edges []edge
		err   error
	)
	root := doc.Content[0]
	for i := 0; i+1 < len(root.Content); i += 2 {
		switch root.Content[i].Value {
		case "nodes":
			nodes, err = yamlNodes(root.Content[i+1])
		case "edges":
			edges, err = yamlEdges(root.Content[i+1])
		}
		if err != nil {
			return nil, err
		}
	}

	return assemble(nodes, edges, o)
}

func yamlNodes(m *yaml.Node) ([]keyedNode, error) {
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: nodes is not a mapping (line %d)", ErrMalformedDocument, m.Line)
	}
	nodes := make([]keyedNode, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		key := m.Content[i].Value
		var n node
		if err := m.Content[i+1].Decode(&n); err != nil {
			return nil, fmt.Errorf("%w: node %q: %v", ErrMalformedDocument, key, err)
		}
		nodes = append(nodes, keyedNode{key: key, node: n})
	}

	return nodes, nil
}

func yamlEdges(s *yaml.Node) ([]edge, error) {
	if s.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: edges is not a sequence (line %d)", ErrMalformedDocument, s.Line)
	}
	edges := make([]edge, 0, len(s.Content))
	for i, item := range s.Content {
		if item.Kind != yaml.SequenceNode || len(item.Content) != 3 {
			return nil, fmt.Errorf("%w: #%d (line %d)", ErrMalformedEdge, i, item.Line)
		}
		from, to, weight := item.Content[0], item.Content[1], item.Content[2]
		if from.Kind != yaml.ScalarNode || to.Kind != yaml.ScalarNode || weight.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: #%d (line %d)", ErrMalformedEdge, i, item.Line)
		}
		var w float64
		if tag := weight.ShortTag(); tag != "!!int" && tag != "!!float" {
			return nil, fmt.Errorf("%w: #%d: weight %q is not a number", ErrMalformedEdge, i, weight.Value)
		}
		if err := weight.Decode(&w); err != nil {
			return nil, fmt.Errorf("%w: #%d: %v", ErrMalformedEdge, i, err)
		}
		edges = append(edges, edge{from: from.Value, to: to.Value, weight: w})
	}

	return edges, nil
}

// EncodeYAML writes g as a YAML map document. Each node is written in flow
// style on one line, each edge as a flow sequence.
func EncodeYAML(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	nodes := &yaml.Node{Kind: yaml.MappingNode}
	for _, lm := range g.Landmarks() {
		body := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
		body.Content = append(body.Content,
			scalar("x"), number(lm.Position.X()),
			scalar("y"), number(lm.Position.Y()),
			scalar("z"), number(lm.Position.Z()),
			scalar("label"), scalar(lm.Label),
		)
		nodes.Content = append(nodes.Content, scalar(lm.Key), body)
	}
	edges := &yaml.Node{Kind: yaml.SequenceNode}
	for _, c := range g.Connections() {
		edges.Content = append(edges.Content, &yaml.Node{
			Kind:    yaml.SequenceNode,
			Style:   yaml.FlowStyle,
			Content: []*yaml.Node{scalar(c.From), scalar(c.To), number(c.Weight)},
		})
	}
	root := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{scalar("nodes"), nodes, scalar("edges"), edges},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("mapio: %w", err)
	}

	return enc.Close()
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func number(f float64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(f, 'f', -1, 64)}
}
