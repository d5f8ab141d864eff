package main

import "adboard/cmd/api/commands"

func main() {
	commands.Execute()
}
