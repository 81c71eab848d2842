// Command otf2dump prints the global definitions and per-location event
// streams of an otf2 archive, the way cmd/dump prints a perf.data file's
// headers and sample stream.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/score-p/go-otf2/otf2"
)

func main() {
	var (
		flagArchive = flag.String("i", "", "input archive `directory`")
		flagDefs    = flag.Bool("defs", true, "print global definitions")
		flagEvents  = flag.Bool("events", true, "print per-location events")
	)
	flag.Parse()
	if *flagArchive == "" || flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	a, err := otf2.Open(*flagArchive, otf2.ArchiveOptions{})
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	fmt.Printf("locations: %d\n", a.NumberOfLocations())

	if *flagDefs {
		cb := otf2.NewDefCallbacks()
		cb.OnUnknown(func(r otf2.Record) error {
			fmt.Printf("def  unknown(%v)\n", r.Type())
			return nil
		})
		for _, kind := range []otf2.RecordType{
			otf2.RecordString, otf2.RecordLocation, otf2.RecordLocationGroup,
			otf2.RecordRegion, otf2.RecordComm, otf2.RecordGroup,
		} {
			kind := kind
			cb.On(kind, func(r otf2.Record) error {
				fmt.Printf("def  %v: %+v\n", kind, r)
				return nil
			})
		}
		if err := a.ReadGlobalDefinitions(cb); err != nil {
			log.Fatal(err)
		}
	}

	if *flagEvents {
		locs, err := a.Locations()
		if err != nil {
			log.Fatal(err)
		}
		for _, loc := range locs {
			r, err := a.LocationReader(loc)
			if err != nil {
				log.Fatal(err)
			}
			cb := otf2.NewEventCallbacks()
			cb.OnAll(func(location otf2.LocationRef, attrs *otf2.AttributeList, rec otf2.Record) error {
				fmt.Printf("loc %d  %v: %+v\n", location, rec.Type(), rec)
				return nil
			})
			cb.OnUnknown(func(location otf2.LocationRef, attrs *otf2.AttributeList, rec otf2.Record) error {
				fmt.Printf("loc %d  unknown(%v)\n", location, rec.Type())
				return nil
			})
			if err := r.ReadEvents(cb); err != nil {
				log.Fatal(err)
			}
		}
	}
}
