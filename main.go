package main

import "jalsetu/cmd"

func main() {
	cmd.Execute()
}
