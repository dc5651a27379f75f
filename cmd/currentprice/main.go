package main

import (
	"github.com/c9s/currentprice/pkg/cmd"
)

func main() {
	cmd.Execute()
}
