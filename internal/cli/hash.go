package cli

import (
	"fmt"

	"github.com/LeJamon/goNeoRPC/internal/rpc/rpc_types"
	"github.com/spf13/cobra"
)

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Work with block and transaction hashes",
}

var hashValidateCmd = &cobra.Command{
	Use:   "validate <hash>",
	Short: "Check a transaction hash and print its canonical form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := rpc_types.ValidateTransactionHash(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), h.String())
		return nil
	},
}

func init() {
	hashCmd.AddCommand(hashValidateCmd)
	rootCmd.AddCommand(hashCmd)
}
