package main

import (
	"github.com/onflow/flow-keccak/cmd/keccaksum/cmd"
)

func main() {
	cmd.Execute()
}
