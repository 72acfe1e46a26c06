package main

import "model-binder/cmd"

func main() {
	cmd.Execute()
}
