package main

import "github.com/codedoc/solution-analyzer/internal/cli"

func main() {
	cli.Execute()
}
