package main

import (
	"github.com/Melaniegou91/debruijn-tp/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
