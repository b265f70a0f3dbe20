package ot

import (
	"fmt"
	"math"
)

// Maximum reasonable counts for table structures.
// These limits prevent malicious fonts from claiming unreasonably large counts
// that could lead to excessive memory allocation.
const (
	MaxScriptCount    = 500  // BaseScriptRecords per axis
	MaxTagListCount   = 100  // baseline tags per axis
	MaxRecordMapCount = 1000 // generic tag record maps (LangSys, FeatMinMax)
	MaxCoordCount     = 1000 // BaseCoords per BaseValues
)

// DefaultMaxTableSize is the largest table the decoders accept, unless
// overridden with MaxTableSize.
const DefaultMaxTableSize = 16 << 20

// ParseOption guides and influences the parsing of a font or table.
type ParseOption func(*parseConfig)

type parseConfig struct {
	strictCoords   bool
	followOffsets  bool
	verifyChecksum bool
	maxTableSize   int
}

var (
	// StrictCoordFormats makes an unknown BaseCoord format fatal. Without it, the
	// coordinate slot is left empty and a warning is recorded.
	StrictCoordFormats ParseOption = func(c *parseConfig) { c.strictCoords = true }

	// FollowCoordOffsets decodes the BaseCoords of a BaseValues table by
	// following the offset array. Without it, BaseCoords are read sequentially
	// right after the offset array.
	FollowCoordOffsets ParseOption = func(c *parseConfig) { c.followOffsets = true }

	// VerifyChecksums checks every table against the checksum in the table directory.
	// Mismatches are recorded as warnings.
	VerifyChecksums ParseOption = func(c *parseConfig) { c.verifyChecksum = true }
)

// MaxTableSize limits the size of tables to decode to n bytes.
func MaxTableSize(n int) ParseOption {
	return func(c *parseConfig) { c.maxTableSize = n }
}

func makeConfig(opts []ParseOption) parseConfig {
	conf := parseConfig{maxTableSize: DefaultMaxTableSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&conf)
		}
	}
	return conf
}

// ---------------------------------------------------------------------------

// checkedMulInt checks for overflow in multiplication of two non-negative integers
func checkedMulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("negative size: %d * %d", a, b)
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > math.MaxInt/b {
		return 0, fmt.Errorf("integer overflow: %d * %d", a, b)
	}
	return a * b, nil
}

// checkedAddUint32 checks for overflow in addition of two uint32 values
func checkedAddUint32(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return a + b, nil
}

func checkCount(name string, n, limit int) error {
	if n > limit {
		return fmt.Errorf("%w: %s count %d, maximum is %d", ErrLimitExceeded, name, n, limit)
	}
	return nil
}
