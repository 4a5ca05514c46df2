package mapio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/katalvlaran/campusnav/core"
)

// Decode reads a JSON map document from r:
//
//	{"nodes": {"gate": {"x":0,"y":0,"z":0,"label":"Main Gate"}, ...},
//	 "edges": [["gate","library",12.5], ...]}
//
// Landmarks keep the order their keys appear in "nodes"; that order is the
// graph's discovery order. Unknown top-level members are skipped.
func Decode(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := resolve(opts)
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var (
		nodes []keyedNode
		edges []edge
	)
	for dec.More() {
		name, err := memberName(dec)
		if err != nil {
			return nil, err
		}
		switch name {
		case "nodes":
			if nodes, err = decodeNodes(dec); err != nil {
				return nil, err
			}
		case "edges":
			if edges, err = decodeEdges(dec); err != nil {
				return nil, err
			}
		default:
			var skip json.RawMessage
			if err = dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("%w: member %q: %v", ErrMalformedDocument, name, err)
			}
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if err := expectEOF(dec); err != nil {
		return nil, err
	}

	return assemble(nodes, edges, o)
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrMalformedDocument, want, tok)
	}

	return nil
}

// expectEOF rejects anything but whitespace after the document.
func expectEOF(dec *json.Decoder) error {
	tok, err := dec.Token()
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return fmt.Errorf("%w: trailing data: %v", ErrMalformedDocument, err)
	default:
		return fmt.Errorf("%w: trailing data starting with %v", ErrMalformedDocument, tok)
	}
}

func memberName(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	name, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected member name, got %v", ErrMalformedDocument, tok)
	}

	return name, nil
}

func decodeNodes(dec *json.Decoder) ([]keyedNode, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var nodes []keyedNode
	for dec.More() {
		key, err := memberName(dec)
		if err != nil {
			return nil, err
		}
		var n node
		if err = dec.Decode(&n); err != nil {
			return nil, fmt.Errorf("%w: node %q: %v", ErrMalformedDocument, key, err)
		}
		nodes = append(nodes, keyedNode{key: key, node: n})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}

	return nodes, nil
}

func decodeEdges(dec *json.Decoder) ([]edge, error) {
	var raw []json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: edges: %v", ErrMalformedDocument, err)
	}
	edges := make([]edge, 0, len(raw))
	for i, msg := range raw {
		var triple []any
		d := json.NewDecoder(bytes.NewReader(msg))
		d.UseNumber()
		if err := d.Decode(&triple); err != nil || len(triple) != 3 {
			return nil, fmt.Errorf("%w: #%d: %s", ErrMalformedEdge, i, msg)
		}
		from, ok1 := triple[0].(string)
		to, ok2 := triple[1].(string)
		num, ok3 := triple[2].(json.Number)
		if !ok1 || !ok2 || !ok3 {
			return nil, fmt.Errorf("%w: #%d: %s", ErrMalformedEdge, i, msg)
		}
		w, err := num.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: #%d: %v", ErrMalformedEdge, i, err)
		}
		edges = append(edges, edge{from: from, to: to, weight: w})
	}

	return edges, nil
}

// Encode writes g as an indented JSON map document, nodes in discovery
// order and edges in insertion order. Decode(Encode(g)) reproduces g.
func Encode(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	var buf bytes.Buffer
	buf.WriteString(`{"nodes":{`)
	for i, lm := range g.Landmarks() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(lm.Key)
		if err != nil {
			return err
		}
		body, err := json.Marshal(node{X: lm.Position.X(), Y: lm.Position.Y(), Z: lm.Position.Z(), Label: lm.Label})
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(body)
	}
	buf.WriteString(`},"edges":`)
	triples := lo.Map(g.Connections(), func(c core.Connection, _ int) [3]any {
		return [3]any{c.From, c.To, c.Weight}
	})
	body, err := json.Marshal(triples)
	if err != nil {
		return fmt.Errorf("mapio: edges: %w", err)
	}
	buf.Write(body)
	buf.WriteByte('}')

	var out bytes.Buffer
	if err = json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(w)

	return err
}
