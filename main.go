package main

import "github.com/atelierlabs/atelier/cmd"

func main() {
	cmd.Execute()
}
