package main

import "github.com/ValentinKolb/dBench/cmd"

func main() {
	cmd.Execute()
}
