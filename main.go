package main

import "fulfillment-portal/cmd"

func main() {
	cmd.Execute()
}
