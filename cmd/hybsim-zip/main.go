// cmd/hybsim-zip/main.go
package main

import (
	"hybsim/internal/appshell"
	"hybsim/internal/zipapp"
)

func main() { appshell.Main(zipapp.RunContext) }
