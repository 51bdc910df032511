package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
)

// readTokens parses a CoNLL-style TSV token stream:
//
//	surface<TAB>tag[<TAB>entity[<TAB>start<TAB>end]]
//
// The entity field uses "-" for none. When spans are omitted they are
// derived from a running character offset with single spaces between
// tokens. Blank lines and '#' comments are skipped.
func readTokens(r io.Reader) ([]domain.Token, error) {
	var tokens []domain.Token
	offset := 0
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: expected at least surface<TAB>tag", domain.ErrInvalidInput, lineNo)
		}

		token := domain.Token{
			Surface: fields[0],
			Tag:     fields[1],
		}
		if len(fields) > 2 && fields[2] != "-" {
			token.Entity = fields[2]
		}

		switch {
		case len(fields) >= 5:
			start, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: bad start offset %q", domain.ErrInvalidInput, lineNo, fields[3])
			}
			end, err := strconv.Atoi(fields[4])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: bad end offset %q", domain.ErrInvalidInput, lineNo, fields[4])
			}
			token.Start, token.End = start, end
			offset = end + 1
		default:
			token.Start = offset
			token.End = offset + len(token.Surface)
			offset = token.End + 1
		}

		tokens = append(tokens, token)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading tokens: %w", err)
	}
	return tokens, nil
}
