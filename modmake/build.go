package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	logshimVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	cli := NewAppBuild("logshim", "cmd/logshim", logshimVersion)
	cli.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", logshimVersion).
			CgoEnabled(false)
	})
	cli.Variant("windows", "amd64")
	cli.Variant("linux", "amd64")
	cli.Variant("linux", "arm64")
	cli.Variant("darwin", "amd64")
	cli.Variant("darwin", "arm64")
	b.ImportApp(cli)

	b.Execute()
}
