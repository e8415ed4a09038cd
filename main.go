package main

import "github.com/itsmostafa/conceptgraph/cmd"

func main() {
	cmd.Execute()
}
