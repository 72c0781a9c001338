package main

import "exifedit/cmd/exifedit/cmd"

func main() {
	cmd.Execute()
}
