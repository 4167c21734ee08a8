package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/unkn0wn-root/quicvarint"
)

func encodeCmd(a *app) *cobra.Command {
	var concat bool

	cmd := &cobra.Command{
		Use:   "encode <int>...",
		Short: "Encode integers as QUIC varints",
		Long: `Encode each integer and print its encoding in hex, one per line.
Integers accept Go syntax (0x, 0o, 0b prefixes). Use "--" before negative values.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var stream []byte
			for _, arg := range args {
				b, err := encodeArg(arg)
				if err != nil {
					return err
				}
				a.log.Debug("encoded", quicvarint.Fields{"input": arg, "len": len(b)})
				if concat {
					stream = append(stream, b...)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(b))
			}
			if concat {
				fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(stream))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&concat, "concat", "c", false, "print all encodings as one hex string")
	return cmd
}

func encodeArg(s string) ([]byte, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err == nil {
		return quicvarint.Append(nil, v)
	}
	// beyond int64 but maybe still a valid uint64
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(s, "-") {
			return nil, fmt.Errorf("%w: %s", quicvarint.ErrInvalidArgument, s)
		}
		if u, uerr := strconv.ParseUint(s, 0, 64); uerr == nil {
			return quicvarint.AppendUint(nil, u)
		}
		return nil, fmt.Errorf("%w: %s", quicvarint.ErrValueTooLarge, s)
	}
	return nil, fmt.Errorf("invalid integer %q", s)
}
