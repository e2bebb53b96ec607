package main

import "github.com/aalvaropc/serieslab/internal/cli"

func main() {
	cli.Execute()
}
