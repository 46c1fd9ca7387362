package main

import "github.com/frahmantamala/recognition/cmd"

func main() {
	cmd.Execute()
}
