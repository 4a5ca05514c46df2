package mapio_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/campusnav/mapio"
)

func ExampleDecode() {
	doc := `{
	  "nodes": {
	    "library": {"x": 3, "y": 0, "z": 4, "label": "Library"},
	    "gate":    {"x": 0, "y": 0, "z": 0, "label": "Main Gate"}
	  },
	  "edges": [["gate", "library", 5], ["library", "gate", 5]]
	}`
	g, err := mapio.Decode(strings.NewReader(doc))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Keys())
	for _, c := range g.Connections() {
		fmt.Printf("%s -> %s %.1f\n", c.From, c.To, c.Weight)
	}
	// Output:
	// [library gate]
	// gate -> library 5.0
	// library -> gate 5.0
}
