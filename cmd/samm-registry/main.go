package main

import "samm-registry/internal/cli"

func main() {
	cli.Execute()
}
