package main

import "github.com/calliari/tunegrab/cmd"

func main() {
	cmd.Execute()
}
