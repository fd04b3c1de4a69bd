package gridio_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tilepath/coord"
	"github.com/katalvlaran/tilepath/gridio"
	"github.com/katalvlaran/tilepath/search"
)

// ExampleDecode builds a hex grid from YAML and finds a path on it.
func ExampleDecode() {
	const doc = `
tiles:
  - [1, 1, 1]
  - [1, 0, 1]
  - [1, 1, 1]
walkableTiles: [1]
gridType: hex
`
	d, err := gridio.Decode(strings.NewReader(doc), gridio.YAML)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, err := d.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, err := search.FindPath(g, coord.New(0, 2), coord.New(2, 0))
	fmt.Println(path, err)
	// Output: [(0,1) (1,0) (2,0)] <nil>
}
