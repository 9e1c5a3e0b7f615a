package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/eiannone/keyboard"

	"hanbal/internal/cli"
	"hanbal/internal/textenc"
	"hanbal/pkg/config"
	"hanbal/pkg/pron"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hanbal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := cli.Parse(os.Args)
	if err != nil {
		return err
	}

	if opts.ShowHelp {
		fmt.Println(cli.Usage())
		return nil
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	hard := cfg.HardConversion
	if opts.NoHard {
		hard = false
	}
	romanized := cfg.Romanize || opts.Romanize
	completeValue := cfg.Complete
	if opts.Complete != "" {
		completeValue = opts.Complete
	}
	mode, err := parseComplete(completeValue)
	if err != nil {
		return err
	}
	encoding := cfg.Encoding
	if opts.Encoding != "" {
		encoding = opts.Encoding
	}

	convert := func(line string) (string, error) {
		if romanized {
			return pron.Romanize(line, mode)
		}
		return pron.Standardize(line, pron.Options{HardConversion: hard, Complete: mode}), nil
	}

	if opts.Interactive {
		return runInteractive(convert)
	}

	if len(opts.Words) > 0 {
		out, err := convert(strings.Join(opts.Words, " "))
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	return runFilter(convert, encoding)
}

// runFilter converts stdin to stdout line by line.
func runFilter(convert func(string) (string, error), encoding string) error {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	for scanner.Scan() {
		line, err := textenc.Decode(scanner.Bytes(), encoding)
		if err != nil {
			return err
		}
		converted, err := convert(line)
		if err != nil {
			return err
		}
		if _, err := writer.WriteString(converted); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// runInteractive is a minimal raw-keyboard line editor: Enter converts the
// buffered line, Backspace edits it, Esc or Ctrl-C quits.
func runInteractive(convert func(string) (string, error)) error {
	if err := keyboard.Open(); err != nil {
		return err
	}
	defer keyboard.Close()

	fmt.Println("hanbal: type a line, Enter converts, Esc quits")
	var buf []rune
	for {
		ch, key, err := keyboard.GetKey()
		if err != nil {
			return err
		}
		switch key {
		case keyboard.KeyEsc, keyboard.KeyCtrlC:
			fmt.Println()
			return nil
		case keyboard.KeyEnter:
			line := string(buf)
			buf = buf[:0]
			converted, err := convert(line)
			if err != nil {
				return err
			}
			fmt.Printf("\n%s\n", converted)
		case keyboard.KeyBackspace, keyboard.KeyBackspace2:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				fmt.Print("\b \b")
			}
		case keyboard.KeySpace:
			buf = append(buf, ' ')
			fmt.Print(" ")
		default:
			if ch != 0 {
				buf = append(buf, ch)
				fmt.Printf("%c", ch)
			}
		}
	}
}

func parseComplete(value string) (pron.CompleteMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none":
		return pron.CompleteNone, nil
	case "phonetic":
		return pron.CompletePhonetic, nil
	case "letter-name", "lettername":
		return pron.CompleteLetterName, nil
	}
	return pron.CompleteNone, fmt.Errorf("invalid complete mode %q (want phonetic or letter-name)", value)
}
