package main

import "github.com/MusicallyEmbodiedML/MEMLNaut-MLDrummer/cmd"

func main() {
	cmd.Execute()
}
