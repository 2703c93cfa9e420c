package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LeJamon/goNeoRPC/internal/rpc"
	"github.com/LeJamon/goNeoRPC/internal/rpc/rpc_types"
	"github.com/LeJamon/goNeoRPC/internal/storage/archive"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	inspectResultType string
	inspectArchive    bool
	inspectWorkers    int
)

// inspection is the outcome of decoding one envelope file.
type inspection struct {
	File      string `json:"file"`
	ID        int64  `json:"id,omitempty"`
	Success   bool   `json:"success"`
	Code      int64  `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
	Malformed string `json:"malformed,omitempty"`
}

func (i inspection) String() string {
	switch {
	case i.Malformed != "":
		return fmt.Sprintf("%s: malformed: %s", i.File, i.Malformed)
	case i.Success:
		return fmt.Sprintf("%s: id=%d success", i.File, i.ID)
	default:
		return fmt.Sprintf("%s: id=%d error %d %s", i.File, i.ID, i.Code, i.Message)
	}
}

// resultDecoders maps --type to a decoder for that result shape.
var resultDecoders = map[string]func([]byte) (inspection, error){
	"raw":             inspectAs[json.RawMessage],
	"applicationlog":  inspectAs[rpc_types.ApplicationLog],
	"invoke":          inspectAs[rpc_types.InvokeResult],
	"nep17balances":   inspectAs[rpc_types.NEP17Balances],
	"validateaddress": inspectAs[rpc_types.ValidateAddressResult],
	"context":         inspectAs[rpc_types.ContractParametersContext],
}

func inspectAs[T any](data []byte) (inspection, error) {
	resp, err := rpc.DecodeResponse[T](data)
	if err != nil {
		return inspection{}, err
	}
	out := inspection{ID: resp.ID(), Success: resp.IsSuccess()}
	if _, err := resp.GetResult(); err != nil {
		var rpcErr *rpc_types.RpcError
		if !errors.As(err, &rpcErr) {
			return inspection{}, err
		}
		out.Code = rpcErr.Code
		out.Message = rpcErr.Message
	}
	return out, nil
}

var envelopeCmd = &cobra.Command{
	Use:   "envelope",
	Short: "Work with JSON-RPC response envelopes",
}

var envelopeInspectCmd = &cobra.Command{
	Use:   "inspect <file...>",
	Short: "Decode response files and report success or error for each",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decode, ok := resultDecoders[inspectResultType]
		if !ok {
			return fmt.Errorf("unknown result type %q", inspectResultType)
		}

		var arch *archive.Archive
		if inspectArchive {
			a, closeFn, err := openArchive()
			if err != nil {
				return err
			}
			defer closeFn()
			arch = a
		}

		results, err := inspectFiles(cmd.Context(), args, decode, arch)
		if err != nil {
			return err
		}

		malformed := 0
		for _, r := range results {
			if r.Malformed != "" {
				malformed++
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
		}
		if malformed > 0 {
			return fmt.Errorf("%d of %d envelopes malformed: %w", malformed, len(results), rpc.ErrMalformedResponse)
		}
		return nil
	},
}

// inspectFiles decodes every file concurrently; results keep argument order.
// Malformed envelopes are reported in the result, I/O failures abort.
func inspectFiles(ctx context.Context, files []string, decode func([]byte) (inspection, error), arch *archive.Archive) ([]inspection, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]inspection, len(files))

	var names []string
	if arch != nil {
		var err error
		if names, err = archiveNames(files); err != nil {
			return nil, err
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	if inspectWorkers > 0 {
		g.SetLimit(inspectWorkers)
	}
	for i, file := range files {
		g.Go(func() error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}

			r, err := decode(data)
			if err != nil {
				if !errors.Is(err, rpc.ErrMalformedResponse) {
					return fmt.Errorf("decode %s: %w", file, err)
				}
				r = inspection{Malformed: err.Error()}
				logger.Warn("malformed envelope", zap.String("file", file), zap.Error(err))
			}
			r.File = file

			if arch != nil {
				if err := arch.Put(ctx, names[i], data); err != nil {
					return err
				}
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// archiveNames keys each file by its cleaned slash-separated path. Two
// arguments naming the same path are rejected before anything is written.
func archiveNames(files []string) ([]string, error) {
	names := make([]string, len(files))
	seen := make(map[string]string, len(files))
	for i, file := range files {
		name := filepath.ToSlash(filepath.Clean(file))
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("%s and %s would both be archived as %q", prev, file, name)
		}
		seen[name] = file
		names[i] = name
	}
	return names, nil
}

func init() {
	envelopeInspectCmd.Flags().StringVar(&inspectResultType, "type", "raw", "result shape: raw, applicationlog, invoke, nep17balances, validateaddress, context")
	envelopeInspectCmd.Flags().BoolVar(&inspectArchive, "archive", false, "keep the raw payloads in the store's archive, keyed by cleaned path")
	envelopeInspectCmd.Flags().IntVar(&inspectWorkers, "workers", 4, "files decoded at once")
	envelopeCmd.AddCommand(envelopeInspectCmd)
	rootCmd.AddCommand(envelopeCmd)
}
