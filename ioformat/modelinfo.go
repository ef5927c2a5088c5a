package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nileshpatra/gubbins/ratematrix"
)

// ReadModelInfo parses an RAxML-style info file for base frequencies
// and GTR exchangeability rates. It recognizes four line shapes, in
// the order RAxML has used them historically:
//
//   - four lines each containing "freq pi", with the frequency as the
//     third whitespace-separated field;
//   - one "Base frequencies:" line with the four frequencies as fields
//     3-6;
//   - six lines each containing "<->" (one per base pair), with the
//     rate as the fifth field, in order AC, AG, AT, CG, CT, GT; or
//   - one "alpha[0]:" line carrying all six rates as fields 10-15, in
//     the same order.
func ReadModelInfo(r io.Reader) (ratematrix.Frequencies, ratematrix.Rates, error) {
	var f ratematrix.Frequencies
	var rt ratematrix.Rates
	haveFreq := false
	freqCount := 0
	haveRates := false
	rateCount := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		words := strings.Fields(line)

		switch {
		case strings.Contains(line, "freq pi"):
			if len(words) < 3 || freqCount >= ratematrix.NumBases {
				continue
			}
			v, err := strconv.ParseFloat(words[2], 64)
			if err != nil {
				return f, rt, fmt.Errorf("ioformat: ReadModelInfo: freq pi line %q: %w", line, ErrInvalidModelInfo)
			}
			f[freqCount] = v
			freqCount++
			haveFreq = true

		case strings.Contains(line, "Base frequencies:"):
			if len(words) < 6 {
				return f, rt, fmt.Errorf("ioformat: ReadModelInfo: %q: %w", line, ErrInvalidModelInfo)
			}
			for i := 0; i < ratematrix.NumBases; i++ {
				v, err := strconv.ParseFloat(words[2+i], 64)
				if err != nil {
					return f, rt, fmt.Errorf("ioformat: ReadModelInfo: %q: %w", line, ErrInvalidModelInfo)
				}
				f[i] = v
			}
			haveFreq = true
			freqCount = ratematrix.NumBases

		case strings.Contains(line, "<->"):
			if len(words) < 5 || rateCount >= len(rt) {
				continue
			}
			v, err := strconv.ParseFloat(words[4], 64)
			if err != nil {
				return f, rt, fmt.Errorf("ioformat: ReadModelInfo: <-> line %q: %w", line, ErrInvalidModelInfo)
			}
			rt[rateCount] = v
			rateCount++
			haveRates = true

		case strings.Contains(line, "alpha[0]:"):
			if len(words) < 15 {
				return f, rt, fmt.Errorf("ioformat: ReadModelInfo: %q: %w", line, ErrInvalidModelInfo)
			}
			for i := 0; i < 6; i++ {
				v, err := strconv.ParseFloat(words[9+i], 64)
				if err != nil {
					return f, rt, fmt.Errorf("ioformat: ReadModelInfo: %q: %w", line, ErrInvalidModelInfo)
				}
				rt[i] = v
			}
			haveRates = true
			rateCount = 6
		}
	}
	if err := scanner.Err(); err != nil {
		return f, rt, fmt.Errorf("ioformat: ReadModelInfo: %w", err)
	}

	if !haveFreq || freqCount != ratematrix.NumBases {
		return f, rt, fmt.Errorf("ioformat: ReadModelInfo: %w", ErrInvalidModelInfo)
	}
	if !haveRates || rateCount != len(rt) {
		return f, rt, fmt.Errorf("ioformat: ReadModelInfo: %w", ErrInvalidModelInfo)
	}
	if err := ratematrix.Validate(f, rt); err != nil {
		return f, rt, fmt.Errorf("ioformat: ReadModelInfo: %w", err)
	}
	return f, rt, nil
}
