package cli

import (
	"encoding/hex"
	"fmt"

	addresscodec "github.com/LeJamon/goNeoRPC/internal/codec/address-codec"
	codectypes "github.com/LeJamon/goNeoRPC/internal/codec/binary-codec/types"
	"github.com/spf13/cobra"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Convert between script hashes, public keys and addresses",
}

var addressEncodeCmd = &cobra.Command{
	Use:   "encode <scripthash>",
	Short: "Encode a 0x script hash as an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := codectypes.Hash160FromString(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), addresscodec.Encode(h, cfg.AddressVersion()))
		return nil
	},
}

var addressDecodeCmd = &cobra.Command{
	Use:   "decode <address>",
	Short: "Decode an address into its script hash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := addresscodec.Decode(args[0], cfg.AddressVersion())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), h.String())
		return nil
	},
}

var addressFromKeyCmd = &cobra.Command{
	Use:   "from-key <publickey>",
	Short: "Derive the single-signature address of a compressed public key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pub, err := hex.DecodeString(codectypes.TrimHexPrefix(args[0]))
		if err != nil {
			return fmt.Errorf("invalid public key hex: %w", err)
		}
		h, err := addresscodec.ScriptHashFromPublicKey(pub)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", addresscodec.Encode(h, cfg.AddressVersion()), h)
		return nil
	},
}

func init() {
	addressCmd.AddCommand(addressEncodeCmd, addressDecodeCmd, addressFromKeyCmd)
	rootCmd.AddCommand(addressCmd)
}
