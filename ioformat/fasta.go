package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadFASTA reads sequence names and residues from r, in file order.
// Sequence lines are concatenated and upper-cased; blank lines are
// skipped.
func ReadFASTA(r io.Reader) (names []string, seqs [][]byte, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var cur strings.Builder
	haveRecord := false

	flush := func() {
		if haveRecord {
			seqs = append(seqs, []byte(cur.String()))
			cur.Reset()
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			flush()
			names = append(names, strings.TrimSpace(line[1:]))
			haveRecord = true
			continue
		}
		if !haveRecord {
			return nil, nil, fmt.Errorf("ioformat: ReadFASTA: %w", ErrMalformedFASTA)
		}
		cur.WriteString(strings.ToUpper(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("ioformat: ReadFASTA: %w", err)
	}
	flush()

	if len(names) == 0 {
		return nil, nil, fmt.Errorf("ioformat: ReadFASTA: %w", ErrEmptyFASTA)
	}
	return names, seqs, nil
}

// fastaLineWidth is the number of residues written per sequence line.
const fastaLineWidth = 60

// WriteFASTA writes names and seqs to w as wrapped FASTA, in the given
// order.
func WriteFASTA(w io.Writer, names []string, seqs [][]byte) error {
	bw := bufio.NewWriter(w)
	for i, name := range names {
		if _, err := fmt.Fprintf(bw, ">%s\n", name); err != nil {
			return fmt.Errorf("ioformat: WriteFASTA: %w", err)
		}
		seq := seqs[i]
		for start := 0; start < len(seq); start += fastaLineWidth {
			end := start + fastaLineWidth
			if end > len(seq) {
				end = len(seq)
			}
			if _, err := bw.Write(seq[start:end]); err != nil {
				return fmt.Errorf("ioformat: WriteFASTA: %w", err)
			}
			if err := bw.WriteByte('\n'); err != nil {
				return fmt.Errorf("ioformat: WriteFASTA: %w", err)
			}
		}
	}
	return bw.Flush()
}
