package main

import "github.com/panyam/queuemodels/cmd/queuecalc/commands"

func main() {
	commands.Execute()
}
