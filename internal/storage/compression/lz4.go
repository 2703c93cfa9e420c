package compression

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/pierrec/lz4"
)

// Frame layout: 1 byte kind, 4 byte little-endian original length, body.
const (
	frameRaw   byte = 0
	frameLZ4   byte = 1
	headerSize      = 5

	// Blocks this small rarely shrink.
	minCompressionSize = 64
	// Hard cap on the declared length of a frame.
	maxFrameLength = 64 << 20
)

// ErrCorruptFrame is returned when a frame header or body is inconsistent.
var ErrCorruptFrame = errors.New("corrupt compression frame")

// NoCompressor writes raw frames.
type NoCompressor struct{}

func (c *NoCompressor) Name() string {
	return "none"
}

func (c *NoCompressor) Compress(data []byte) ([]byte, error) {
	return rawFrame(data), nil
}

func (c *NoCompressor) Decompress(frame []byte) ([]byte, error) {
	return decodeFrame(frame)
}

// LZ4Compressor writes lz4 block frames, falling back to a raw frame when
// the block does not shrink.
type LZ4Compressor struct{}

func (c *LZ4Compressor) Name() string {
	return "lz4"
}

func (c *LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) < minCompressionSize {
		return rawFrame(data), nil
	}

	compressed := make([]byte, headerSize+lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, compressed[headerSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	// CompressBlock reports 0 for incompressible input.
	if n == 0 || n >= len(data) {
		return rawFrame(data), nil
	}

	compressed[0] = frameLZ4
	binary.LittleEndian.PutUint32(compressed[1:headerSize], uint32(len(data)))
	return compressed[:headerSize+n], nil
}

func (c *LZ4Compressor) Decompress(frame []byte) ([]byte, error) {
	return decodeFrame(frame)
}

func rawFrame(data []byte) []byte {
	frame := make([]byte, headerSize+len(data))
	frame[0] = frameRaw
	binary.LittleEndian.PutUint32(frame[1:headerSize], uint32(len(data)))
	copy(frame[headerSize:], data)
	return frame
}

func decodeFrame(frame []byte) ([]byte, error) {
	if len(frame) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorruptFrame, len(frame))
	}
	length := binary.LittleEndian.Uint32(frame[1:headerSize])
	if length > maxFrameLength {
		return nil, fmt.Errorf("%w: declared length %d exceeds %d", ErrCorruptFrame, length, maxFrameLength)
	}
	body := frame[headerSize:]

	switch frame[0] {
	case frameRaw:
		if uint32(len(body)) != length {
			return nil, fmt.Errorf("%w: raw body is %d bytes, header says %d", ErrCorruptFrame, len(body), length)
		}
		return append([]byte(nil), body...), nil
	case frameLZ4:
		out := make([]byte, length)
		n, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %v", ErrCorruptFrame, err)
		}
		if uint32(n) != length {
			return nil, fmt.Errorf("%w: lz4 body inflated to %d bytes, header says %d", ErrCorruptFrame, n, length)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unknown frame kind %d", ErrCorruptFrame, frame[0])
	}
}
