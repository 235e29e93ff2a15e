// Resolves a query or URL and prints the tracks it would queue. Handy for
// checking sources and yt-dlp behavior without a Discord session.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"groovebox/internal/music/source_resolver"
)

func main() {
	source := flag.String("source", "", "force a source (youtube, soundcloud, direct)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: cli [-source name] <url or search text>")
		os.Exit(2)
	}

	resolver := source_resolver.New()
	tracks, err := resolver.Resolve(flag.Arg(0), *source)
	if err != nil {
		log.Fatalf("[ERR] Resolve failed: %v", err)
	}

	for i, t := range tracks {
		fmt.Printf("%2d. %s [%s] (%s)\n", i+1, t.DisplayTitle(), t.DurationString(), t.Source)
	}
}
