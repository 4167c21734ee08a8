package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unkn0wn-root/quicvarint"
)

func inspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <hex>",
		Short: "Show the layout of a single varint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseHex(args[0])
			if err != nil {
				return err
			}
			v, n, err := quicvarint.Parse(b)
			if err != nil {
				return err
			}
			if n < len(b) {
				a.log.Warn("ignoring trailing bytes", quicvarint.Fields{"count": len(b) - n})
			}
			canonical, _ := quicvarint.AppendUint(nil, v)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "class:     %d\n", b[0]>>6)
			fmt.Fprintf(out, "length:    %d\n", n)
			fmt.Fprintf(out, "value:     %d\n", v)
			fmt.Fprintf(out, "canonical: %t (%x)\n", len(canonical) == n, canonical)
			return nil
		},
	}
}
