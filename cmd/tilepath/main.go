// Command tilepath runs path, area and component queries on a tile grid
// described in a JSON or YAML file.
//
// Usage:
//
//	tilepath -grid map.yaml -from 0,0 -to 4,2
//	tilepath -grid map.json -mode area -from 0,0 -from 7,3 -format csv
//	tilepath -query request.yaml -mode path -format json
//	tilepath -grid map.yaml -mode components
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
