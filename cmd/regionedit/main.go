// Command regionedit is an interactive shell for inspecting and editing
// the editable regions of local text files. Every command is routed
// through the tool registry, so argument validation and output
// formatting behave exactly as they do for a programmatic caller.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/regionedit/regionedit"
	"github.com/regionedit/regionedit/toolset"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr,
			"%sError: %v%s\n",
			colorRed, err, colorReset)
		os.Exit(1)
	}
}

func run() error {
	engine := regionedit.New(
		regionedit.WithLogger(regionedit.NewWriterLogger(os.Stderr)),
	)

	format := toolset.FormatJSON
	registry, err := toolset.NewDefault(engine, toolset.WithFormat(format))
	if err != nil {
		return fmt.Errorf("failed to build tool registry: %w", err)
	}

	rl, err := readline.New(colorCyan + "regionedit> " + colorReset)
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	printHelp()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		args, err := splitArgs(line)
		if err != nil {
			fmt.Printf("%s%v%s\n", colorRed, err, colorReset)
			continue
		}
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "q", "quit", "exit":
			return nil
		case "help":
			printHelp()
		case "tools":
			printCatalog(registry)
		case "format":
			if len(args) != 2 {
				fmt.Printf("%susage: format json|yaml%s\n", colorYellow, colorReset)
				continue
			}
			switch args[1] {
			case "json":
				format = toolset.FormatJSON
			case "yaml":
				format = toolset.FormatYAML
			default:
				fmt.Printf("%sunknown format %q%s\n", colorYellow, args[1], colorReset)
				continue
			}
			registry, err = toolset.NewDefault(engine, toolset.WithFormat(format))
			if err != nil {
				return fmt.Errorf("failed to rebuild tool registry: %w", err)
			}
			fmt.Printf("%soutput format set to %s%s\n", colorDim, args[1], colorReset)
		default:
			invoke(registry, args)
		}
	}
}

// invoke maps a shell command to a tool call and prints the result.
func invoke(registry *toolset.Registry, args []string) {
	name, toolArgs, err := buildCall(args)
	if err != nil {
		fmt.Printf("%s%v%s\n", colorYellow, err, colorReset)
		return
	}

	result, err := registry.Call(context.Background(), name, toolArgs)
	if err != nil {
		fmt.Printf("%s%v%s\n", colorRed, err, colorReset)
		return
	}
	fmt.Printf("%s%s%s\n", colorGreen, result.Text(), colorReset)
}

// buildCall translates a tokenized command into a tool name and
// argument map.
func buildCall(args []string) (string, map[string]any, error) {
	cmd := args[0]
	rest := args[1:]

	need := func(n int, usage string) error {
		if len(rest) != n {
			return fmt.Errorf("usage: %s", usage)
		}
		return nil
	}

	switch cmd {
	case "list":
		if err := need(1, "list <file>"); err != nil {
			return "", nil, err
		}
		return "list_regions", map[string]any{"file_path": rest[0]}, nil
	case "read":
		if err := need(2, "read <file> <region>"); err != nil {
			return "", nil, err
		}
		return "read_region", map[string]any{
			"file_path": rest[0], "region_name": rest[1],
		}, nil
	case "write":
		if err := need(3, "write <file> <region> <content>"); err != nil {
			return "", nil, err
		}
		return "write_region", map[string]any{
			"file_path": rest[0], "region_name": rest[1], "new_content": rest[2],
		}, nil
	case "preview":
		if err := need(3, "preview <file> <region> <content>"); err != nil {
			return "", nil, err
		}
		return "preview_region", map[string]any{
			"file_path": rest[0], "region_name": rest[1], "new_content": rest[2],
		}, nil
	case "replace":
		if len(rest) != 4 && len(rest) != 5 {
			return "", nil, errors.New("usage: replace <file> <region> <old> <new> [max]")
		}
		toolArgs := map[string]any{
			"file_path": rest[0], "region_name": rest[1],
			"old_text": rest[2], "new_text": rest[3],
		}
		if len(rest) == 5 {
			max, err := strconv.Atoi(rest[4])
			if err != nil {
				return "", nil, fmt.Errorf("max must be an integer: %v", err)
			}
			toolArgs["max_occurrences"] = max
		}
		return "replace_in_region", toolArgs, nil
	case "delete":
		if err := need(3, "delete <file> <region> <text>"); err != nil {
			return "", nil, err
		}
		return "delete_in_region", map[string]any{
			"file_path": rest[0], "region_name": rest[1], "text_to_delete": rest[2],
		}, nil
	case "before":
		if err := need(4, "before <file> <region> <anchor> <text>"); err != nil {
			return "", nil, err
		}
		return "insert_before_in_region", map[string]any{
			"file_path": rest[0], "region_name": rest[1],
			"find_text": rest[2], "text_to_insert": rest[3],
		}, nil
	case "after":
		if err := need(4, "after <file> <region> <anchor> <text>"); err != nil {
			return "", nil, err
		}
		return "insert_after_in_region", map[string]any{
			"file_path": rest[0], "region_name": rest[1],
			"find_text": rest[2], "text_to_insert": rest[3],
		}, nil
	default:
		return "", nil, fmt.Errorf("unknown command %q; try 'help'", cmd)
	}
}

func printCatalog(registry *toolset.Registry) {
	for _, info := range registry.Catalog() {
		fmt.Printf("%s%s%s\n  %s%s%s\n",
			colorBold, info.Name, colorReset,
			colorDim, info.Description, colorReset)
	}
}

func printHelp() {
	fmt.Print(colorBold + "Commands:" + colorReset + `
  list <file>                           list editable regions
  read <file> <region>                  print region content
  write <file> <region> <content>       replace region content
  preview <file> <region> <content>     diff of a would-be write
  replace <file> <region> <old> <new> [max]
  delete <file> <region> <text>         delete first occurrence
  before <file> <region> <anchor> <text>
  after <file> <region> <anchor> <text>
  tools                                 show the tool catalog
  format json|yaml                      switch output format
  help, q
` + colorDim + `Quote arguments containing spaces; \n, \t, \" and \\ are
recognized inside double quotes.` + colorReset + "\n")
}

// splitArgs tokenizes a command line. Double quotes group words and
// recognize \n, \t, \", and \\ escapes; single quotes group words
// verbatim.
func splitArgs(line string) ([]string, error) {
	var args []string
	var cur strings.Builder
	inWord := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == ' ' || c == '\t':
			if inWord {
				args = append(args, cur.String())
				cur.Reset()
				inWord = false
			}
		case c == '\'':
			inWord = true
			end := strings.IndexByte(line[i+1:], '\'')
			if end < 0 {
				return nil, errors.New("unterminated single quote")
			}
			cur.WriteString(line[i+1 : i+1+end])
			i += end + 1
		case c == '"':
			inWord = true
			i++
			closed := false
			for ; i < len(line); i++ {
				if line[i] == '"' {
					closed = true
					break
				}
				if line[i] == '\\' && i+1 < len(line) {
					i++
					switch line[i] {
					case 'n':
						cur.WriteByte('\n')
					case 't':
						cur.WriteByte('\t')
					case '"':
						cur.WriteByte('"')
					case '\\':
						cur.WriteByte('\\')
					default:
						cur.WriteByte('\\')
						cur.WriteByte(line[i])
					}
					continue
				}
				cur.WriteByte(line[i])
			}
			if !closed {
				return nil, errors.New("unterminated double quote")
			}
		default:
			inWord = true
			cur.WriteByte(c)
		}
	}
	if inWord {
		args = append(args, cur.String())
	}
	return args, nil
}
