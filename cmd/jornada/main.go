// Command jornada runs the adaptive onboarding on a terminal, over HTTP or
// as an MCP tool server.
package main

func main() {
	Execute()
}
