package main

import "github.com/dbsmedya/tablestats/cmd/tablestats/cmd"

func main() {
	cmd.Execute()
}
