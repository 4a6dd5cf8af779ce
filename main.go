package main

import "github.com/Sena-ops/docguard/cmd"

func main() {
	cmd.Execute()
}
