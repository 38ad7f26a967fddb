package main

import "github.com/vaenkat/health-ecosystem-hub/cmd"

func main() {
	cmd.Execute()
}
