package main

import "segment-audit/cmd"

func main() {
	cmd.Execute()
}
