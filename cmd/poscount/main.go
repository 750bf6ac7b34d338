package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/xgzlucario/sortlist"
	"github.com/xgzlucario/sortlist/option"
	"github.com/xgzlucario/sortlist/source"
)

func main() {
	path := flag.String("data", option.DefaultOption.Path, "data file of whitespace separated integers")
	flag.Parse()

	r, err := source.Open(*path)
	if err != nil {
		slog.Error("cannot open data file", "path", *path, "error", err)
		os.Exit(1)
	}
	defer r.Close()

	list := sortlist.New()
	r.Iter(list.Insert)

	fmt.Printf("The number of positive elements is %d.\n", list.CountPositive())
}
