package egtbgen

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/kvhoang/felicity-egtb/internal/score"
)

// checkpointSignature tags a temp-resumption frame so an incompatible or
// truncated file is rejected outright rather than misread.
const checkpointSignature uint32 = 0x47544543 // "CETG" read little-endian

// frameHeaderSize is the fixed leading header of a checkpoint file:
// signature(4) + loop counter(4) + checksum(8).
const frameHeaderSize = 16

func (g *gen) tempPath(side string) string {
	dir := g.opts.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, fmt.Sprintf("%s.%s_tmp", g.rec.String(), side))
}

// checkpoint writes both side streams to temp files if enabled. I/O errors
// are logged and otherwise ignored: a checkpoint write failure is never
// fatal, only a missed opportunity to resume later.
func (g *gen) checkpoint(ctx context.Context) {
	if g.opts.NoTempFiles {
		return
	}
	if err := writeCheckpointFile(g.tempPath("w"), g.loop, g.white); err != nil {
		log.Warn().Err(err).Str("name", g.rec.String()).Msg("egtbgen: checkpoint write failed, continuing without it")
	}
	if err := writeCheckpointFile(g.tempPath("b"), g.loop, g.black); err != nil {
		log.Warn().Err(err).Str("name", g.rec.String()).Msg("egtbgen: checkpoint write failed, continuing without it")
	}
}

// resume loads both side streams from temp files if both exist and their
// checksums match, setting g.loop to maxLoop+1 so iteratePhase and
// initPhase skip work already done.
func (g *gen) resume(ctx context.Context) error {
	if g.opts.NoTempFiles {
		return nil
	}
	wLoop, wScores, wErr := readCheckpointFile(g.tempPath("w"), len(g.white))
	if wErr != nil {
		return nil
	}
	bLoop, bScores, bErr := readCheckpointFile(g.tempPath("b"), len(g.black))
	if bErr != nil {
		return nil
	}
	if wLoop != bLoop {
		return nil
	}
	copy(g.white, wScores)
	copy(g.black, bScores)
	g.loop = wLoop + 1
	log.Info().Str("name", g.rec.String()).Int("loop", g.loop).Msg("egtbgen: resumed from checkpoint")
	return nil
}

func writeCheckpointFile(path string, loop int, scores []score.Score) error {
	payload := make([]byte, len(scores)*2)
	for i, s := range scores {
		b, err := score.Encode2(s)
		if err != nil {
			return fmt.Errorf("encode cell %d: %w", i, err)
		}
		payload[2*i], payload[2*i+1] = b[0], b[1]
	}

	h := fnv.New64a()
	h.Write(payload)

	header := make([]byte, frameHeaderSize)
	binary.LittleEndian.PutUint32(header[0:4], checkpointSignature)
	binary.LittleEndian.PutUint32(header[4:8], uint32(loop))
	binary.LittleEndian.PutUint64(header[8:16], h.Sum64())

	tmp := path + ".writing"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := f.Write(header); err != nil {
		f.Close()
		return err
	}
	if _, err := f.Write(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func readCheckpointFile(path string, wantCells int) (loop int, scores []score.Score, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, nil, err
	}
	if len(raw) != frameHeaderSize+wantCells*2 {
		return 0, nil, fmt.Errorf("egtbgen: checkpoint %s has wrong size", path)
	}
	if binary.LittleEndian.Uint32(raw[0:4]) != checkpointSignature {
		return 0, nil, fmt.Errorf("egtbgen: checkpoint %s bad signature", path)
	}
	loop = int(binary.LittleEndian.Uint32(raw[4:8]))
	wantChecksum := binary.LittleEndian.Uint64(raw[8:16])

	payload := raw[frameHeaderSize:]
	h := fnv.New64a()
	h.Write(payload)
	if h.Sum64() != wantChecksum {
		return 0, nil, fmt.Errorf("egtbgen: checkpoint %s checksum mismatch", path)
	}

	scores = make([]score.Score, wantCells)
	for i := range scores {
		scores[i] = score.Decode2([2]byte{payload[2*i], payload[2*i+1]})
	}
	return loop, scores, nil
}
