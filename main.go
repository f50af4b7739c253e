package main

import (
	"github.com/notescan/notescan/cmd"
)

func main() {
	cmd.Execute()
}
