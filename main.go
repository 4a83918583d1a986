package main

import "github.com/lapuropizza/storefront/cmd"

func main() {
	cmd.Execute()
}
