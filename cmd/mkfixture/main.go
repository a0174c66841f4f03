// mkfixture writes a small NDJSON metadata fixture with representative messy
// date values for exercising the curate commands.
// Usage: go run ./cmd/mkfixture --out testdata/records.ndjson --rows 50
package main

import (
	"flag"
	"fmt"
	"os"

	"seqlab.dev/metacurate/internal/model"
	"seqlab.dev/metacurate/internal/recordio"
)

// Date values cycle through the shapes seen in real submission metadata:
// full ISO, year-month, year only, timestamped, US-style, and junk.
var dateShapes = []string{
	"2021-03-15",
	"2021-03",
	"2021",
	"2021-3-4",
	"2021-03-15T00:00:00Z",
	"03-15",
	"15.03.2021",
	"",
	"unknown",
}

var countries = []string{"USA", "DEU", "CHN", "BRA", "ZAF", "GBR"}

func main() {
	out := flag.String("out", "testdata/records.ndjson", "output NDJSON file")
	rows := flag.Int("rows", 50, "number of records to write")
	flag.Parse()

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	w := recordio.NewWriter(f)
	for i := 0; i < *rows; i++ {
		rec := model.Record{
			"strain":         fmt.Sprintf("A/sample/%04d", i+1),
			"date":           dateShapes[i%len(dateShapes)],
			"date_submitted": dateShapes[(i+3)%len(dateShapes)],
			"country":        countries[i%len(countries)],
			"length":         900 + i,
		}
		if err := w.Write(rec); err != nil {
			fmt.Fprintf(os.Stderr, "write record %d: %v\n", i+1, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Wrote %d records to %s\n", *rows, *out)
}
