// cmd/diet-interp/main.go
package main

import (
	"dietinterp/internal/app"
	"dietinterp/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
