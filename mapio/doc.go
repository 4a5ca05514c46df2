// Package mapio reads and writes campus map documents.
//
// The canonical document is JSON:
//
//	{
//	  "nodes": {
//	    "main_gate": {"x": 0, "y": 0, "z": 0, "label": "Main Gate"},
//	    "library":   {"x": 12, "y": 0, "z": 5, "label": "Library"}
//	  },
//	  "edges": [
//	    ["main_gate", "library", 13],
//	    ["library", "main_gate", 13]
//	  ]
//	}
//
// Decode keeps the order node keys appear in the document, so two loads
// of the same file route identically. Each edge is one directed connection;
// walkways usable both ways appear twice. Edges naming unknown nodes are
// kept and logged unless WithStrictEndpoints is given.
//
// YAML carries the same shape for hand editing. Load and Save choose the
// codec from the file extension.
package mapio
