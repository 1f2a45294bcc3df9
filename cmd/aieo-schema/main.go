package main

import "github.com/Darin2/monitor-public/internal/commands"

func main() {
	commands.Execute()
}
