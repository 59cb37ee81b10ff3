package main

import "github.com/Rex-Orokumue/Vendor-verification/cmd"

func main() {
	cmd.Execute()
}
