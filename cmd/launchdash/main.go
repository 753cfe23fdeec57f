package main

import "github.com/emiliopalmerini/launchdash/internal/cli"

func main() {
	cli.Execute()
}
