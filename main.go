package main

import "github.com/oniryk-labs/oniryk-xlsx/cmd"

func main() {
	cmd.Execute()
}
