package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"watch-shop/utils"
)

func main() {
	in := flag.String("in", "data/watches.json", "catalog file to read")
	out := flag.String("out", "data/watches.updated.json", "file to write; the input is never touched")
	markup := flag.Float64("markup", 5000, "amount added to every price")
	flag.Parse()

	if err := run(*in, *out, *markup); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(infile, outfile string, markup float64) error {
	raw, err := os.ReadFile(infile)
	if err != nil {
		return err
	}

	updated, err := addMarkup(raw, markup)
	if err != nil {
		return err
	}

	// The output is written only after the whole transformation succeeded.
	if err := os.WriteFile(outfile, updated, 0644); err != nil {
		return err
	}

	fmt.Println("Done — wrote updated JSON to:", outfile)
	return nil
}

// addMarkup adds markup to every record's coerced price. Prices stay
// strings and all other fields pass through untouched.
func addMarkup(raw []byte, markup float64) ([]byte, error) {
	var records []map[string]interface{}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("catalog must be a JSON array of records: %w", err)
	}

	for _, rec := range records {
		price := utils.NumericCoerce(rec["price"], 0)
		rec["price"] = strconv.FormatFloat(price+markup, 'f', -1, 64)
	}

	return json.MarshalIndent(records, "", "  ")
}
