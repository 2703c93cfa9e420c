package cli

import (
	"fmt"

	coretypes "github.com/LeJamon/goNeoRPC/internal/core/types"
	"github.com/LeJamon/goNeoRPC/internal/storage/archive"
	"github.com/LeJamon/goNeoRPC/internal/storage/compression"
	"github.com/LeJamon/goNeoRPC/internal/storage/database/pebble"
	"github.com/LeJamon/goNeoRPC/internal/storage/tokenstore"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	tokensDBName  = "tokens"
	archiveDBName = "archive"
)

func openTokenStore() (*tokenstore.Store, func(), error) {
	manager := pebble.NewManager(cfg.Store.Path, cfg.Store.BlockCacheBytes)
	db, err := manager.OpenDB(tokensDBName)
	if err != nil {
		return nil, nil, err
	}
	store, err := tokenstore.New(db, tokenstore.Config{
		CacheSize:       cfg.Store.CacheSize,
		MaxStringLength: cfg.Codec.MaxStringLength,
	}, logger)
	if err != nil {
		_ = manager.Close()
		return nil, nil, err
	}
	return store, closeManager(manager), nil
}

func openArchive() (*archive.Archive, func(), error) {
	compressor, err := compression.Get(cfg.Store.Compressor())
	if err != nil {
		return nil, nil, err
	}
	manager := pebble.NewManager(cfg.Store.Path, cfg.Store.BlockCacheBytes)
	db, err := manager.OpenDB(archiveDBName)
	if err != nil {
		return nil, nil, err
	}
	return archive.New(db, compressor, logger), closeManager(manager), nil
}

func closeManager(m *pebble.Manager) func() {
	return func() {
		if err := m.Close(); err != nil {
			logger.Error("closing store", zap.String("path", m.Path()), zap.Error(err))
		}
	}
}

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Keep method tokens and archived payloads in the local store",
}

var putTokenFlags tokenFlags

var storePutCmd = &cobra.Command{
	Use:   "put",
	Short: "Store a method token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := putTokenFlags.token()
		if err != nil {
			return err
		}
		store, closeFn, err := openTokenStore()
		if err != nil {
			return err
		}
		defer closeFn()

		if err := store.Put(cmd.Context(), t); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "stored %s %s\n", t.Hash(), t.Method())
		return nil
	},
}

var (
	getHash   string
	getMethod string
)

var storeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print a stored method token, or every token of a contract when --method is omitted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := parseScriptHash(getHash)
		if err != nil {
			return err
		}
		store, closeFn, err := openTokenStore()
		if err != nil {
			return err
		}
		defer closeFn()

		if getMethod == "" {
			tokens, err := store.List(cmd.Context(), hash)
			if err != nil {
				return err
			}
			if tokens == nil {
				tokens = []*coretypes.MethodToken{}
			}
			return writeJSON(cmd, tokens)
		}

		t, err := store.Get(cmd.Context(), hash, getMethod)
		if err != nil {
			return err
		}
		return writeJSON(cmd, t)
	},
}

var storePayloadCmd = &cobra.Command{
	Use:   "payload [name]",
	Short: "Print an archived payload, or list archived names",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arch, closeFn, err := openArchive()
		if err != nil {
			return err
		}
		defer closeFn()

		if len(args) == 0 {
			names, err := arch.Names(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		}

		payload, err := arch.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(payload)
		return err
	},
}

func init() {
	putTokenFlags.register(storePutCmd)

	storeGetCmd.Flags().StringVar(&getHash, "hash", "", "contract script hash (0x hex) or address")
	storeGetCmd.Flags().StringVar(&getMethod, "method", "", "method name")
	_ = storeGetCmd.MarkFlagRequired("hash")

	storeCmd.AddCommand(storePutCmd, storeGetCmd, storePayloadCmd)
	rootCmd.AddCommand(storeCmd)
}
