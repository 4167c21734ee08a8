package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unkn0wn-root/quicvarint"
	"github.com/unkn0wn-root/quicvarint/codec"
)

func decodeCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "decode <hex>...",
		Short: "Decode QUIC varints from hex",
		Long: `Decode every varint found in each hex argument and print the values,
one per line. With --strict each argument must hold exactly one varint.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				b, err := parseHex(arg)
				if err != nil {
					return err
				}
				if strict {
					v, err := (codec.Varint{}).Decode(b)
					if err != nil {
						return fmt.Errorf("decode %s: %w", arg, err)
					}
					fmt.Fprintln(cmd.OutOrStdout(), v)
					continue
				}
				if len(b) == 0 {
					return fmt.Errorf("decode %s: %w", arg, quicvarint.ErrBufferUnderflow)
				}
				buf := quicvarint.NewBuffer(b)
				for buf.Remaining() > 0 {
					off := buf.Pos()
					v, err := buf.ReadVarint()
					if err != nil {
						a.log.Error("decode failed", quicvarint.Fields{"input": arg, "offset": off, "err": err})
						return fmt.Errorf("decode %s at offset %d: %w", arg, off, err)
					}
					if n := buf.Pos() - off; n != quicvarint.Len(v) {
						a.log.Warn("non-canonical encoding", quicvarint.Fields{"offset": off, "len": n, "value": v})
					}
					a.log.Debug("decoded", quicvarint.Fields{"offset": off, "value": v})
					fmt.Fprintln(cmd.OutOrStdout(), v)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "require exactly one varint per argument")
	return cmd
}
