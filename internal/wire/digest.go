package wire

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/lox/courtside/internal/engine"
	"github.com/tinylib/msgp/msgp"
)

// Digest fingerprints a play-by-play log. Two games with the same seed,
// rosters and tuning digest identically; any divergence in any field of
// any output changes the result.
func Digest(log []engine.ActionOutput) (string, error) {
	h := sha256.New()
	w := msgp.NewWriter(h)
	if err := w.WriteArrayHeader(uint32(len(log))); err != nil {
		return "", err
	}
	for i, out := range log {
		if err := encodeOutput(w, out); err != nil {
			return "", msgp.WrapError(err, i)
		}
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func encodeOutput(w *msgp.Writer, out engine.ActionOutput) error {
	if err := w.WriteArrayHeader(13); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(out.Possession)); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(out.Situation)); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(out.Advantage)); err != nil {
		return err
	}
	if err := w.WriteString(out.Description); err != nil {
		return err
	}
	if err := w.WriteUint32(uint32(out.StartAt)); err != nil {
		return err
	}
	if err := w.WriteUint32(uint32(out.EndAt)); err != nil {
		return err
	}
	if err := w.WriteInt(out.HomeScore); err != nil {
		return err
	}
	if err := w.WriteInt(out.AwayScore); err != nil {
		return err
	}
	if err := encodeSlots(w, out.Attackers); err != nil {
		return err
	}
	if err := encodeSlots(w, out.Defenders); err != nil {
		return err
	}
	if out.AssistFrom == nil {
		if err := w.WriteNil(); err != nil {
			return err
		}
	} else if err := w.WriteInt(*out.AssistFrom); err != nil {
		return err
	}
	if err := encodeStats(w, out.AttackStats); err != nil {
		return err
	}
	return encodeStats(w, out.DefenseStats)
}

func encodeSlots(w *msgp.Writer, slots []int) error {
	if err := w.WriteArrayHeader(uint32(len(slots))); err != nil {
		return err
	}
	for _, s := range slots {
		if err := w.WriteInt(s); err != nil {
			return err
		}
	}
	return nil
}

// encodeStats writes entries in id order so map iteration order never leaks
// into the digest.
func encodeStats(w *msgp.Writer, stats engine.StatsMap) error {
	ids := stats.IDs()
	if err := w.WriteArrayHeader(uint32(len(ids))); err != nil {
		return err
	}
	for _, id := range ids {
		s := stats[id]
		if err := w.WriteBytes(id[:]); err != nil {
			return err
		}
		ints := []int{
			s.Position, s.Turnovers, s.Steals, s.Assists, s.Points,
			s.TwoPointAttempts, s.TwoPointMade, s.ThreePointAttempts, s.ThreePointMade,
			s.OffensiveRebounds, s.DefensiveRebounds, s.Blocks, s.PlusMinus,
		}
		if err := w.WriteArrayHeader(uint32(len(ints) + 2)); err != nil {
			return err
		}
		if err := w.WriteFloat32(s.InitialTiredness); err != nil {
			return err
		}
		if err := w.WriteFloat32(s.Tiredness); err != nil {
			return err
		}
		for _, v := range ints {
			if err := w.WriteInt(v); err != nil {
				return err
			}
		}
	}
	return nil
}
