// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"context"
	"flag"
	"iter"
	"log/slog"
	"os"

	"github.com/poiesic/strand"
	"github.com/poiesic/strand/ingest"
)

var values = []string{
	"racecar",
	"level",
	"rotor",
	"kayak",
	"deified",
	"civic",
	"madam",
	"noon",
	"wow",
	"A man a plan a canal Panama",
	"Was it a car or a cat I saw",
	"No lemon no melon",
	"taco cat",
	"hello world",
	"the quick brown fox jumps over the lazy dog",
	"pack my box with five dozen liquor jugs",
	"sphinx of black quartz judge my vow",
	"go",
	"a",
	"never odd or even",
	"step on no pets",
	"top spot",
	"was it a rat I saw",
	"do geese see god",
	"some strings are longer than others",
	"short",
	"an example with exactly six words here",
	"repetition repetition repetition",
	"punctuation, matters!",
	"MiXeD CaSe PaLiNdRoMe abccba",
	"numbers 12321 count too",
	"whitespace   collapses   nowhere here",
	"unicode works: héllo wörld",
	"日本語のテキスト",
	"αβγ γβα",
	"empty words        ",
	"one",
	"two words",
	"three word phrase",
	"four word phrase here",
	"five word phrase right here",
}

var (
	seedFileName = flag.String("src", "", "file of seed data, one value per line")
	dbPath       = flag.String("db", "", "path to BadgerDB database directory (in-memory if omitted)")
	poolSize     = flag.Int("workers", 0, "ingest worker count (0 = default)")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// linesFromFile returns an iterator over lines in a file.
func linesFromFile(filename string) (iter.Seq[string], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}, nil
}

// linesFromSlice returns an iterator over a slice of strings.
func linesFromSlice(lines []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, line := range lines {
			if !yield(line) {
				return
			}
		}
	}
}

// ingestBatched reads from a source iterator and ingests values in batches.
func ingestBatched(ctx context.Context, pipeline *ingest.Pipeline, source iter.Seq[string], batchSize int) (*ingest.Report, error) {
	total := &ingest.Report{}
	batch := make([]string, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		report, err := pipeline.Ingest(ctx, batch)
		if err != nil {
			return err
		}
		total.Submitted += report.Submitted
		total.Inserted += report.Inserted
		total.Duplicates += report.Duplicates
		total.Invalid += report.Invalid
		total.Failed += report.Failed
		batch = batch[:0]
		return nil
	}

	for line := range source {
		batch = append(batch, line)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	if err := flush(); err != nil {
		return total, err
	}

	return total, nil
}

func main() {
	var opts []strand.ServiceOption
	if *dbPath != "" {
		opts = append(opts, strand.WithStoragePath(*dbPath))
	}

	svc, err := strand.New(opts...)
	if err != nil {
		panic(err)
	}
	defer svc.Close()

	var pipelineOpts []ingest.Option
	if *poolSize > 0 {
		pipelineOpts = append(pipelineOpts, ingest.WithPoolSize(*poolSize))
	}
	pipeline, err := svc.NewIngestPipeline(pipelineOpts...)
	if err != nil {
		panic(err)
	}
	defer pipeline.Release()

	ctx := context.Background()

	// Determine source of seed data
	var source iter.Seq[string]
	if *seedFileName != "" {
		source, err = linesFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	} else {
		source = linesFromSlice(values)
	}

	// Ingest in batches of 25
	report, err := ingestBatched(ctx, pipeline, source, 25)
	if err != nil {
		panic(err)
	}

	slog.Info("seeding complete",
		"submitted", report.Submitted,
		"inserted", report.Inserted,
		"duplicates", report.Duplicates,
		"invalid", report.Invalid,
		"failed", report.Failed,
	)
}
