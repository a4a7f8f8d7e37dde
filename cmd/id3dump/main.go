// Command id3dump prints the frames of each named file's tag.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/audiotag/audiotag/id3v2"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	idColor     = color.New(color.FgGreen)
	errColor    = color.New(color.FgRed)
)

func dumpFile(name string) {
	headerColor.Println(name)

	b, err := os.ReadFile(name)
	if err != nil {
		errColor.Println(err)
		return
	}

	if !id3v2.Check(b) {
		errColor.Println("no tag")
		return
	}

	tag, err := id3v2.Parse(b)
	if err != nil {
		errColor.Println(err)
		if tag == nil {
			return
		}
		// Keep printing whatever parsed before the corruption.
	}

	fmt.Printf("%s, flags %#02x, %d frames, %d bytes padding\n",
		tag.Header.Version, byte(tag.Header.Flags), len(tag.Frames), tag.Padding)

	for _, frame := range tag.Frames {
		switch f := frame.(type) {
		case id3v2.UserTextFrame:
			idColor.Printf("%s", f.ID())
			fmt.Printf(" [%s]: %s\n", f.Description, f.Text)
		case id3v2.OpaqueFrame:
			idColor.Printf("%s", f.ID())
			fmt.Printf(": %d bytes (not interpreted)\n", len(f.Data))
		default:
			idColor.Printf("%s", frame.ID())
			fmt.Printf(": %s\n", frame.Value())
		}
	}
}

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s file...", os.Args[0])
	}

	for _, name := range os.Args[1:] {
		dumpFile(name)
		fmt.Println()
	}
}
