package main

import "github.com/petrolab/gonodal/cmd"

func main() {
	cmd.Execute()
}
