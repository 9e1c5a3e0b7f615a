package cli

import (
	"fmt"
	"strings"
)

type Options struct {
	ShowHelp    bool
	Romanize    bool
	Interactive bool
	NoHard      bool
	Complete    string
	ConfigPath  string
	Encoding    string
	Words       []string
}

func Parse(args []string) (Options, error) {
	opts := Options{}
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--help" || arg == "-h":
			opts.ShowHelp = true
		case arg == "--romanize" || arg == "-r":
			opts.Romanize = true
		case arg == "--interactive" || arg == "-i":
			opts.Interactive = true
		case arg == "--no-hard":
			opts.NoHard = true
		case strings.HasPrefix(arg, "--complete"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.Complete = value
			i = next
		case strings.HasPrefix(arg, "--config"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.ConfigPath = value
			i = next
		case strings.HasPrefix(arg, "--encoding"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.Encoding = value
			i = next
		case strings.HasPrefix(arg, "--"):
			return Options{}, fmt.Errorf("unknown option: %s", arg)
		default:
			opts.Words = append(opts.Words, arg)
		}
	}
	return opts, nil
}

func extractValue(current string, index int, args []string) (string, int, error) {
	if eq := strings.IndexRune(current, '='); eq >= 0 {
		return current[eq+1:], index, nil
	}
	if index+1 >= len(args) {
		return "", index, fmt.Errorf("option %s requires a value", current)
	}
	return args[index+1], index + 1, nil
}

func Usage() string {
	return `hanbal - Korean standard pronunciation converter
Usage: hanbal [options] [text...]

Reads words from the arguments, or lines from stdin when no text is given,
and prints the standard pronunciation (or its romanization).

Options:
  --romanize, -r          Print the Revised Romanization instead of Hangul
  --no-hard               Disable tensification (hard conversion)
  --complete MODE         Read isolated jamo letters: phonetic | letter-name
  --config PATH           INI file with defaults (sections [pronounce], [output])
  --encoding NAME         Input encoding: utf-8 (default) | euc-kr
  --interactive, -i       Raw-keyboard line editor; Enter converts, Esc quits
  -h, --help              Show this help message`
}
