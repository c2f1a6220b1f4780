// cmd/softmask2bed/main.go
package main

import (
	"github.com/JavierMenRev/softmask2BED/internal/app"
	"github.com/JavierMenRev/softmask2BED/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
