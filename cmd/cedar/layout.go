package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cedar/internal/layout"
	"cedar/internal/source"
	"cedar/internal/types"
)

var layoutTriple string

func init() {
	layoutCmd.Flags().StringVar(&layoutTriple, "target", "", "target triple (defaults to x86_64-linux-gnu)")
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print size and alignment of builtin and sample composite types",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, ok := layout.ByTriple(layoutTriple)
		if !ok {
			return fmt.Errorf("unknown target triple %q, see 'cedar targets'", layoutTriple)
		}

		strings := source.NewInterner()
		reg := types.NewRegistry()
		engine := layout.New(target, reg)
		b := reg.Builtins()

		rows := []types.TypeID{
			b.Bool, b.Char,
			b.I8, b.I16, b.I32, b.I64,
			b.U8, b.U16, b.U32, b.U64,
			b.F32, b.F64,
			reg.ArrayOf(b.I32, 4),
			reg.TupleOf([]types.TypeID{b.I32, b.F64, b.Bool}, types.NoDeclID),
			reg.UnionOf([]types.TypeID{b.I32, b.F64}, types.NoDeclID),
			reg.FnOf([]types.TypeID{b.I32}, b.Bool, types.NoDeclID),
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "TYPE\tSIZE\tALIGN\t(%s)\n", target.Triple)
		for _, id := range rows {
			l := engine.Of(id)
			fmt.Fprintf(w, "%s\t%d\t%d\t\n", reg.Format(id, strings), l.Size, l.Align)
		}
		return w.Flush()
	},
}
