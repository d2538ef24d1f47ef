package main

import "particle-audit/cmd"

func main() {
	cmd.Execute()
}
