package main

import "github.com/jhruska/callsight/internal/cli"

func main() {
	cli.Execute()
}
