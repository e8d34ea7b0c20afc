/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"github.com/josephgoksu/todowing/cmd"
	"github.com/josephgoksu/todowing/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
