package main

import "github.com/automac-mcp/automac/cmd"

func main() {
	cmd.Execute()
}
