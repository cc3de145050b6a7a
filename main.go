package main

import "aoe4-sync/cmd"

func main() {
	cmd.Execute()
}
