package main

import "movie-search/internal/cli"

func main() {
	cli.Execute()
}
