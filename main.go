package main

import (
	"github.com/codinghedgehog/mlstar/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
