package compress

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Block is one fixed-size payload chunk plus whether it is stored raw
// instead of compressed.
type Block struct {
	Data []byte
	Raw  bool
}

// CompressAll splits payload into fixed-size chunks and LZMA-compresses
// each concurrently, bounded by workers.
func CompressAll(ctx context.Context, payload []byte, blockSize, workers int) ([]Block, error) {
	n := (len(payload) + blockSize - 1) / blockSize
	blocks := make([]Block, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			start := i * blockSize
			end := start + blockSize
			if end > len(payload) {
				end = len(payload)
			}
			chunk := payload[start:end]
			compressed, used, err := CompressBlock(chunk)
			if err != nil {
				return err
			}
			if used {
				blocks[i] = Block{Data: compressed, Raw: false}
			} else {
				blocks[i] = Block{Data: chunk, Raw: true}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return blocks, nil
}

// DecompressAll inverts CompressAll, reassembling the original payload.
// blockLen is the uncompressed length of every block except possibly the
// last, which is truncated to totalLen.
func DecompressAll(ctx context.Context, blocks []Block, blockLen, totalLen, workers int) ([]byte, error) {
	out := make([]byte, totalLen)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, b := range blocks {
		i, b := i, b
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			start := i * blockLen
			end := start + blockLen
			if end > totalLen {
				end = totalLen
			}
			want := end - start
			if b.Raw {
				copy(out[start:end], b.Data)
				return nil
			}
			plain, err := DecompressBlock(b.Data, want)
			if err != nil {
				return err
			}
			copy(out[start:end], plain)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
