package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stacksforge/clarion/clarity"
)

func inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [value]",
		Short: "Decode a notation string and print its structure",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			} else {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				input = strings.TrimRight(string(raw), "\n")
			}
			render(cmd.OutOrStdout(), clarity.Value(input), 0)
			return nil
		},
	}
}

// render prints one value per line, indenting for each nesting level.
// Wrappers peel via the scoped decoder; tuples and lists decode one level
// and recurse into their still-encoded fields.
func render(w io.Writer, v clarity.Value, depth int) {
	indent := strings.Repeat("  ", depth)
	s := string(v)

	switch {
	case strings.HasPrefix(s, "(ok "):
		if inner, err := v.ExpectOk(); err == nil {
			fmt.Fprintf(w, "%sok\n", indent)
			render(w, inner, depth+1)
			return
		}
	case strings.HasPrefix(s, "(err "):
		if inner, err := v.ExpectErr(); err == nil {
			fmt.Fprintf(w, "%serr\n", indent)
			render(w, inner, depth+1)
			return
		}
	case strings.HasPrefix(s, "(some "):
		if inner, err := v.ExpectSome(); err == nil {
			fmt.Fprintf(w, "%ssome\n", indent)
			render(w, inner, depth+1)
			return
		}
	case strings.HasPrefix(s, "{"):
		if fields, err := v.ExpectTuple(); err == nil {
			fmt.Fprintf(w, "%stuple\n", indent)
			names := make([]string, 0, len(fields))
			for name := range fields {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(w, "%s  %s:\n", indent, name)
				render(w, fields[name], depth+2)
			}
			return
		}
	case strings.HasPrefix(s, "["):
		if elems, err := v.ExpectList(); err == nil {
			fmt.Fprintf(w, "%slist(%d)\n", indent, len(elems))
			for _, e := range elems {
				render(w, e, depth+1)
			}
			return
		}
	}

	fmt.Fprintf(w, "%s%s\n", indent, s)
}
