package ot

import "fmt"

// headChecksumAdjustment is the position of checkSumAdjustment in table 'head'.
const headChecksumAdjustment = 8

// Checksum computes the sfnt checksum of b, i.e. the sum of all big-endian
// uint32 words of b. A trailing partial word is padded with zeros.
func Checksum(b []byte) uint32 {
	var sum uint32
	n := len(b) &^ 3
	for i := 0; i < n; i += 4 {
		sum += u32(b[i:])
	}
	if n < len(b) {
		var pad [4]byte
		copy(pad[:], b[n:])
		sum += u32(pad[:])
	}
	return sum
}

// VerifyChecksum checks the table described by e against its stored checksum.
// The 'head' table is checked with its checkSumAdjustment field taken as 0.
func VerifyChecksum(font []byte, e DirectoryEntry) error {
	end, ok := e.End()
	if !ok || int64(end) > int64(len(font)) {
		return fmt.Errorf("%w: table '%s' exceeds font size %d", ErrOutOfBounds, e.Tag, len(font))
	}
	table := font[e.Offset:end]
	sum := Checksum(table)
	if e.Tag == T("head") && len(table) >= headChecksumAdjustment+4 {
		sum -= u32(table[headChecksumAdjustment:])
	}
	if sum != e.Checksum {
		return fmt.Errorf("%w: table '%s' sums to 0x%08x, directory has 0x%08x",
			ErrChecksum, e.Tag, sum, e.Checksum)
	}
	return nil
}
