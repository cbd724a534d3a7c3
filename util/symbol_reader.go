package util

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// ReadSymbols returns the trimmed, non-empty lines of r in order.
// We use io.Reader so it works with files, uploads or strings.
func ReadSymbols(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	symbols := make([]string, 0)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		symbols = append(symbols, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading symbol list: %w", err)
	}
	return symbols, nil
}

// LoadSymbolFile reads a newline-delimited symbol list. A missing or
// unreadable file yields an empty list.
func LoadSymbolFile(path string) []string {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Str("path", path).Msg("Symbol file not found")
		} else {
			log.Error().Err(err).Str("path", path).Msg("Error opening symbol file")
		}
		return []string{}
	}
	defer file.Close()

	symbols, err := ReadSymbols(file)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Error reading symbol file")
		return []string{}
	}
	return symbols
}
