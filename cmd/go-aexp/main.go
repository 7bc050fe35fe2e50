package main

import (
	"github.com/consensys/go-aexp/pkg/cmd"
)

func main() {
	cmd.Execute()
}
