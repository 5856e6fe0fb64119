package main

import (
	"github.com/allisonsierra/bomsmith/cmd"
)

func main() {
	cmd.Execute()
}
