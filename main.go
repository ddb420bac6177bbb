package main

import "github.com/devicelab-dev/testreport/pkg/cli"

func main() {
	cli.Execute()
}
