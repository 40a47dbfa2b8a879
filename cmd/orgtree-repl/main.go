package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phroun/orgtree"
	"github.com/phroun/orgtree/internal/chart"
)

// REPL holds the state of the interactive session
type REPL struct {
	tree   *orgtree.Tree
	reader *bufio.Reader
	out    io.Writer
	prompt bool
}

func main() {
	fmt.Println("orgtree REPL - Interactive Reporting Hierarchy")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	repl := newREPL(os.Stdin, os.Stdout)
	repl.prompt = true
	repl.loop()
}

func newREPL(in io.Reader, out io.Writer) *REPL {
	return &REPL{
		tree:   orgtree.New(),
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (r *REPL) loop() {
	for {
		if r.prompt {
			fmt.Fprint(r.out, "orgtree> ")
		}
		input, err := r.reader.ReadString('\n')
		if err != nil && input == "" {
			if r.prompt {
				fmt.Fprintln(r.out, "\nGoodbye!")
			}
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.handleCommand(input) {
			return
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	cmd, rest, _ := strings.Cut(input, " ")
	cmd = strings.ToLower(cmd)
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		fmt.Fprintln(r.out, "Goodbye!")
		return false

	case "root":
		r.cmdRoot(rest)

	case "insert":
		r.cmdInsert(rest)

	case "find":
		r.cmdFind(rest)

	case "preorder", "inorder", "postorder":
		r.cmdTraverse(cmd)

	case "show", "tree":
		fmt.Fprint(r.out, chart.Diagram(r.tree))

	case "len", "status":
		fmt.Fprintf(r.out, "Members: %d\n", r.tree.Len())

	case "reset":
		r.tree = orgtree.New()
		fmt.Fprintln(r.out, "Tree cleared")

	case "demo":
		r.cmdDemo()

	default:
		fmt.Fprintf(r.out, "Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	help := `
Available Commands:
-------------------

BUILDING:
  root <name>                       Set the root member (once per tree)
  insert <parent> | <name> | <side> Attach <name> under <parent>; side is left or right
  demo                              Replace the tree with the reference hierarchy
  reset                             Discard the tree and start empty

INSPECTION:
  find <name>                       Show a member and their direct reports
  preorder                          Supervisors before their reports
  inorder                           Left reports, supervisor, right reports
  postorder                         Reports before their supervisors
  show                              Draw the tree
  len                               Count members

NOTE: Names may contain spaces, so insert arguments are separated by '|'.

OTHER:
  help                              Show this help message
  quit, exit                        Exit the REPL
`
	fmt.Fprintln(r.out, help)
}

func (r *REPL) cmdRoot(name string) {
	if name == "" {
		fmt.Fprintln(r.out, "Usage: root <name>")
		return
	}
	if err := r.tree.SetRoot(name); err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "Root set to %s\n", name)
}

func (r *REPL) cmdInsert(rest string) {
	parts := strings.Split(rest, "|")
	if len(parts) != 3 {
		fmt.Fprintln(r.out, "Usage: insert <parent> | <name> | <side>")
		return
	}
	parent := strings.TrimSpace(parts[0])
	name := strings.TrimSpace(parts[1])
	side := orgtree.Side(strings.TrimSpace(parts[2]))

	if err := r.tree.Insert(parent, name, side); err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "Attached %s as %s report of %s\n", name, side, parent)
}

func (r *REPL) cmdFind(name string) {
	n, ok := r.tree.Lookup(name)
	if !ok {
		fmt.Fprintf(r.out, "No member named %q\n", name)
		return
	}
	fmt.Fprintln(r.out, n.Name())
	for _, side := range []orgtree.Side{orgtree.Left, orgtree.Right} {
		report := "(none)"
		if c := n.Child(side); c != nil {
			report = c.Name()
		}
		fmt.Fprintf(r.out, "  %-6s %s\n", side+":", report)
	}
}

func (r *REPL) cmdTraverse(cmd string) {
	o, err := orgtree.ParseOrder(cmd)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "%q\n", orgtree.Traverse(r.tree.Root(), o))
}

func (r *REPL) cmdDemo() {
	tree, err := chart.Demo().Build(slog.New(slog.DiscardHandler))
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	r.tree = tree
	fmt.Fprintf(r.out, "Loaded reference hierarchy (%d members)\n", tree.Len())
}
