package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/heathj/htmlattrs/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
