package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Downloads daily OHLCV history from the Stooq public CSV endpoint and
// writes one data/<SYMBOL>.csv file per symbol, in the layout the
// backtest command expects (date,open,high,low,close,volume).

const stooqURL = "https://stooq.com/q/d/l/?s=%s&d1=%s&d2=%s&i=d"

func main() {
	var (
		symbols = flag.String("symbols", "QQQ,AAPL,AMZN,GOOG,META,MSFT", "Comma-separated list of symbols")
		outdir  = flag.String("outdir", "data", "Directory to write CSV files")
		start   = flag.String("start", "2014-01-01", "Start date (YYYY-MM-DD)")
		end     = flag.String("end", "", "End date (YYYY-MM-DD, default today)")
		suffix  = flag.String("suffix", ".us", "Stooq market suffix appended to each symbol")
	)

	flag.Parse()

	startDate, err := time.Parse("2006-01-02", *start)
	if err != nil {
		log.Fatalf("Invalid start date format: %v", err)
	}

	endDate := time.Now()
	if *end != "" {
		endDate, err = time.Parse("2006-01-02", *end)
		if err != nil {
			log.Fatalf("Invalid end date format: %v", err)
		}
	}

	if err := os.MkdirAll(*outdir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	totalRows := 0

	for _, raw := range strings.Split(*symbols, ",") {
		symbol := strings.ToUpper(strings.TrimSpace(raw))
		if symbol == "" {
			continue
		}

		rows, err := fetchSymbol(client, symbol, *suffix, startDate, endDate)
		if err != nil {
			log.Printf("❌ %s: %v", symbol, err)
			continue
		}

		outPath := filepath.Join(*outdir, symbol+".csv")
		if err := writeCSV(outPath, rows); err != nil {
			log.Printf("❌ %s: %v", symbol, err)
			continue
		}

		log.Printf("✅ %s: %d rows -> %s", symbol, len(rows), outPath)
		totalRows += len(rows)
	}

	log.Printf("Done. Total rows: %d", totalRows)
}

// fetchSymbol downloads and parses the Stooq daily CSV for one symbol
func fetchSymbol(client *http.Client, symbol, suffix string, start, end time.Time) ([][]string, error) {
	url := fmt.Sprintf(stooqURL,
		strings.ToLower(symbol)+suffix,
		start.Format("20060102"),
		end.Format("20060102"))

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	reader := csv.NewReader(resp.Body)

	// Stooq header: Date,Open,High,Low,Close,Volume
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("empty response: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("malformed CSV: %w", err)
		}
		if len(record) < 6 {
			continue
		}
		rows = append(rows, record[:6])
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data returned (unknown symbol?)")
	}

	return rows, nil
}

// writeCSV writes the rows with the lowercase header the loader expects
func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"date", "open", "high", "low", "close", "volume"}); err != nil {
		return err
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
