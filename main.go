package main

import "github.com/kasuboski/cineprime/cmd"

func main() {
	cmd.Execute()
}
