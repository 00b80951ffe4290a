package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/scottcagno/hashmap/pkg/hashmap/chained"
)

type ModeCommand struct {
	File string `short:"f" long:"file" description:"also read whitespace separated values from this file"`
}

func (x *ModeCommand) Execute(args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}
	values := args
	if x.File != "" {
		f, err := os.Open(x.File)
		if err != nil {
			return errors.Wrap(err, "opening values file")
		}
		defer f.Close()
		words, err := readWords(f)
		if err != nil {
			return errors.Wrapf(err, "reading %s", x.File)
		}
		values = append(values, words...)
	}
	if len(values) == 0 {
		return errors.New("mode: no values given")
	}
	modes, freq := chained.FindMode(values)
	log.Infof("found %d mode(s) among %d values", len(modes), len(values))
	fmt.Printf("mode: %s\nfrequency: %d\n", strings.Join(modes, ", "), freq)
	return nil
}

// readWords splits r into whitespace separated words
func readWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	return words, sc.Err()
}
