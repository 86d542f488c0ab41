// Command uidemo lays out TOML scenes and dumps glyph atlases.
//
//	uidemo layout scene.toml
//	uidemo atlas --size 32 -o glyphs.png
package main

import "os"

func main() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}
