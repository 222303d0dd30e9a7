package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/yanun0323/logs"

	"main/internal/bond"
	"main/internal/booking"
	"main/internal/feedgen"
	"main/internal/marketdata"
)

func main() {
	outDir := flag.String("out", "data", "Output directory for feed files")
	prices := flag.Int("prices", 600, "Number of price ticks")
	bookTicks := flag.Int("book-ticks", 600, "Number of order book ticks")
	trades := flag.Int("trades", 60, "Number of booked trades")
	inquiries := flag.Int("inquiries", 60, "Number of inquiries")
	depth := flag.Int("depth", marketdata.DefaultBookDepth, "Order book levels per side")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logs.Errorf("create output directory, err: %+v", err)
		os.Exit(1)
	}

	reg := bond.NewRegistry()
	files := []struct {
		name  string
		gen   feedgen.Generator
		count int
	}{
		{"prices.txt", feedgen.NewPriceGenerator(reg), *prices},
		{"marketdata.txt", feedgen.NewBookGenerator(reg, *depth), *bookTicks},
		{"trades.txt", feedgen.NewTradeGenerator(reg, booking.DefaultBooks), *trades},
		{"inquiries.txt", feedgen.NewInquiryGenerator(reg), *inquiries},
	}

	for _, f := range files {
		path := filepath.Join(*outDir, f.name)
		if err := feedgen.WriteFile(path, f.gen, f.count); err != nil {
			logs.Errorf("generate %s, err: %+v", f.name, err)
			os.Exit(1)
		}
		logs.Infof("generated %s, records: %d", path, f.count)
	}
}
