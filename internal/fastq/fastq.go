// Package fastq reads fastq record files and counts the k-mers
// of their read sequences
package fastq

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Read parses the fastq file at path and returns its read sequences.
//
// Each record is four lines: a header starting with '@', the sequence,
// a separator line starting with '+' and a quality line. Only the
// sequence lines are kept.
func Read(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open fastq file")
	}
	defer file.Close()

	var reads []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	for scanner.Scan() {
		header := strings.TrimSpace(scanner.Text())
		if header == "" {
			continue
		}
		if !strings.HasPrefix(header, "@") {
			return nil, errors.Errorf("malformed fastq record, header %q does not start with '@'", header)
		}

		// the three remaining lines of the record
		block := make([]string, 0, 3)
		for i := 0; i < 3 && scanner.Scan(); i++ {
			block = append(block, strings.TrimSpace(scanner.Text()))
		}
		if len(block) < 3 {
			return nil, errors.Errorf("truncated fastq record %q", header)
		}
		if !strings.HasPrefix(block[1], "+") {
			return nil, errors.Errorf("malformed fastq record %q, missing '+' separator", header)
		}

		reads = append(reads, block[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read fastq file")
	}

	return reads, nil
}

// Kmers cuts read into its overlapping substrings of length k.
func Kmers(read string, k int) []string {
	if k < 1 || k > len(read) {
		return nil
	}

	kmers := make([]string, 0, len(read)-k+1)
	for i := 0; i+k <= len(read); i++ {
		kmers = append(kmers, read[i:i+k])
	}
	return kmers
}

// Count builds the occurrence table of every k-mer across reads.
// Counts accumulate across reads.
//
// It errors before any counting if k or the reads cannot produce
// k-mers: k must be at least 2 and smaller than the shortest read.
func Count(reads []string, k int) (map[string]int, error) {
	if k < 2 {
		return nil, errors.Errorf("k-mer size must be at least 2, got %d", k)
	}
	if len(reads) == 0 {
		return nil, errors.New("no reads to count k-mers from")
	}
	for _, read := range reads {
		if len(read) <= k {
			return nil, errors.Errorf(
				"k-mer size %d must be smaller than the shortest read (%d bp)", k, len(read))
		}
	}

	counts := make(map[string]int)
	for _, read := range reads {
		for _, kmer := range Kmers(read, k) {
			counts[kmer]++
		}
	}
	return counts, nil
}
