package main

import (
	"github.com/tsijukebox/jukebox-backup/cmd"
)

var (
	version string
	commit  string
	date    string
)

func main() {
	cmd.ExecuteCLI(version, commit, date)
}
