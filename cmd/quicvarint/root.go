package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/unkn0wn-root/quicvarint"
)

// app carries state shared by subcommands.
type app struct {
	logFormat string
	verbose   bool
	log       quicvarint.Logger
}

func rootCmd() *cobra.Command {
	a := &app{log: quicvarint.NopLogger{}}

	cmd := &cobra.Command{
		Use:   "quicvarint",
		Short: "Encode and decode QUIC variable-length integers",
		Long: `quicvarint converts between integers and the QUIC variable-length
integer encoding (RFC 9000, section 16).

  quicvarint encode 15293          # 7bbd
  quicvarint decode 7bbd           # 15293
  quicvarint inspect 4025          # class, length, canonical form`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := newLogger(a.logFormat, a.verbose, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "zap", "diagnostic log backend: zap, logrus or slog")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		encodeCmd(a),
		decodeCmd(a),
		inspectCmd(a),
		versionCmd(),
	)
	return cmd
}

// parseHex accepts an optional 0x prefix and ignores spaces and colons.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	s = strings.NewReplacer(" ", "", ":", "").Replace(s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", s, err)
	}
	return b, nil
}
