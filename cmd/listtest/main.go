package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"listkit/adlist"
	"listkit/config"
	"listkit/fileio"
	"listkit/record"
)

// listtest reads (number, word) pairs from a text file into a list of
// Records and walks the list operations once: append, remove tail,
// prepend, remove head, find, insert before, remove middle, find by
// number, duplicate, sort, destroy.
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	configPath := flag.String("config", "", "optional yaml file with the demo values")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal().Msg("Need a file with the test data")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("config", *configPath).Msg("Could not load the demo config")
	}

	fp, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Str("file", flag.Arg(0)).Msg("The file does not exist or is corrupted")
	}
	defer fp.Close()

	list := record.ListCallbacks(adlist.Create())

	sc := fileio.New(fp)
	for {
		number, err := sc.NextInt()
		if err == io.EOF {
			break
		}
		word, err := sc.NextWord()
		if err == io.EOF {
			log.Warn().Int("number", number).Msg("Input ended after a number with no word")
			break
		}
		list.AddNodeTail(record.New(number, word))
	}

	out := os.Stdout

	fmt.Fprintln(out, "Original list:")
	printList(out, list)

	// Deletion at the tail.
	if node := list.Last(); node != nil {
		r, _ := node.NodeValue().(*record.Record)
		list.DelNode(node)
		if err := record.Free(r); err != nil {
			log.Error().Err(err).Msg("Could not free the tail record")
		}
	}
	fmt.Fprintln(out, "\n Test deletion from the Tail:")
	printList(out, list)

	// Insertion at the head.
	list.AddNodeHead(record.New(cfg.HeadNumber, []byte(cfg.HeadText)))
	fmt.Fprintln(out, "\n Test insertion at the Head:")
	printList(out, list)

	// Deletion at the head.
	if node := list.First(); node != nil {
		r, _ := node.NodeValue().(*record.Record)
		list.DelNode(node)
		if err := record.Free(r); err != nil {
			log.Error().Err(err).Msg("Could not free the head record")
		}
	}
	fmt.Fprintln(out, "\n Test deletion from the Head:")
	printList(out, list)

	// Insertion in the middle, in front of a found node.
	item := record.FindInList(list, cfg.FindText, record.ByRawText)
	if item == nil {
		log.Error().Str("text", cfg.FindText).Msg("Failed to find selected node")
	} else {
		list.InsertBefore(item, record.New(cfg.MiddleNumber, []byte(cfg.MiddleText)))
	}
	fmt.Fprintln(out, "\n Test insertion in the middle:")
	printList(out, list)

	// Deletion in the middle, finding the node by its text first.
	if item = record.FindInList(list, cfg.FindText, record.ByRawText); item == nil {
		log.Error().Str("text", cfg.FindText).Msg("Failed to find selected node")
	} else {
		r, _ := item.NodeValue().(*record.Record)
		fmt.Fprintln(out, "\nFound element in the list")
		if err := record.Fprint(out, r); err != nil {
			log.Error().Err(err).Msg("Error printing the found element")
		}

		list.DelNode(item)
		if err := record.Free(r); err != nil {
			log.Error().Err(err).Msg("Could not free the middle record")
		}

		fmt.Fprintln(out, "\n Test deletion from middle:")
		printList(out, list)
	}

	// Finding a bare number.
	if item = record.FindInList(list, cfg.FindNumber, record.ByRawNumber); item == nil {
		log.Error().Int("number", cfg.FindNumber).Msg("Failed to find selected node")
	} else {
		r, _ := item.NodeValue().(*record.Record)
		fmt.Fprintf(out, "\nFound element %d in the list: \n", cfg.FindNumber)
		if err := record.Fprint(out, r); err != nil {
			log.Error().Err(err).Msg("Error printing the found element")
		}
	}

	// Deep copy, then sort the copy by number.
	fmt.Fprintln(out, "\nCreating a copy of the list")
	cp := record.CopyList(list)
	if cp == nil {
		log.Error().Msg("Failed to copy the list")
	} else {
		printList(out, cp)

		cp.Sort(func(a, b interface{}) int {
			ra, _ := a.(*record.Record)
			rb, _ := b.(*record.Record)
			return int(record.Compare(ra, rb))
		})
		fmt.Fprintln(out, "Sorted copy")
		printList(out, cp)
	}

	if err := record.DestroyList(list); err != nil {
		log.Error().Err(err).Msg("The list was not destroyed successfully")
	}
	if cp != nil {
		if err := record.DestroyList(cp); err != nil {
			log.Error().Err(err).Msg("The copy was not destroyed successfully")
		}
	}
}

func printList(w io.Writer, l *adlist.List) {
	if err := record.PrintList(w, l); err != nil {
		log.Error().Err(err).Msg("Error printing the list")
	}
}
