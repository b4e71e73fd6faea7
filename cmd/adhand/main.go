package main

import "github.com/oshokin/adhan-alarm/cmd/adhand/cmd"

func main() {
	cmd.Execute()
}
