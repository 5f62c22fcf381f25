// cmd/hybsim-registry/main.go
package main

import (
	"hybsim/internal/appshell"
	"hybsim/internal/registryapp"
)

func main() { appshell.Main(registryapp.RunContext) }
