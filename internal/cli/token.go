package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	addresscodec "github.com/LeJamon/goNeoRPC/internal/codec/address-codec"
	"github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/serdes"
	codectypes "github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/types"
	coretypes "github.com/LeJamon/goNeoRPC/internal/core/types"
	"github.com/spf13/cobra"
)

// tokenFlags are the method token fields shared by token encode and store put.
type tokenFlags struct {
	hash    string
	method  string
	params  int32
	returns bool
	flags   string
}

func (f *tokenFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.hash, "hash", "", "contract script hash (0x hex) or address")
	cmd.Flags().StringVar(&f.method, "method", "", "method name")
	cmd.Flags().Int32Var(&f.params, "params", 0, "number of parameters")
	cmd.Flags().BoolVar(&f.returns, "returns", false, "method has a return value")
	cmd.Flags().StringVar(&f.flags, "flags", "All", "call flags, comma separated")
	_ = cmd.MarkFlagRequired("hash")
	_ = cmd.MarkFlagRequired("method")
}

func (f *tokenFlags) token() (*coretypes.MethodToken, error) {
	hash, err := parseScriptHash(f.hash)
	if err != nil {
		return nil, err
	}
	if _, err := coretypes.ParseCallFlags(f.flags); err != nil {
		return nil, err
	}
	t, err := coretypes.NewMethodToken(&hash, &f.method, f.params, f.returns, &f.flags)
	if err != nil {
		return nil, err
	}
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid method token %s", t)
	}
	return t, nil
}

// parseScriptHash accepts the 0x hex form or an address under the configured version.
func parseScriptHash(s string) (codectypes.Hash160, error) {
	if len(s) == addresscodec.AddressLength && !strings.HasPrefix(s, "0x") {
		return addresscodec.Decode(s, cfg.AddressVersion())
	}
	return codectypes.Hash160FromString(s)
}

func parserOptions() []serdes.ParserOption {
	opts := []serdes.ParserOption{serdes.WithUTF8Validation()}
	if cfg.Codec.MaxStringLength > 0 {
		opts = append(opts, serdes.WithMaxStringLength(cfg.Codec.MaxStringLength))
	}
	return opts
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Encode and decode method tokens",
}

var encodeTokenFlags tokenFlags

var tokenEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a method token to wire hex",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := encodeTokenFlags.token()
		if err != nil {
			return err
		}
		data, err := serdes.Encode(t)
		if err != nil {
			return err
		}
		// token decode must accept what token encode prints
		if _, err := coretypes.DecodeMethodToken(data, parserOptions()...); err != nil {
			return fmt.Errorf("method token %s exceeds codec limits: %w", t, err)
		}
		logger.Debug("encoded method token")
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
		return nil
	},
}

var tokenDecodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode wire hex into a method token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := hex.DecodeString(codectypes.TrimHexPrefix(args[0]))
		if err != nil {
			return fmt.Errorf("invalid hex input: %w", err)
		}
		t, err := coretypes.DecodeMethodToken(data, parserOptions()...)
		if err != nil {
			return err
		}
		return writeJSON(cmd, t)
	},
}

func init() {
	encodeTokenFlags.register(tokenEncodeCmd)
	tokenCmd.AddCommand(tokenEncodeCmd, tokenDecodeCmd)
	rootCmd.AddCommand(tokenCmd)
}
