package utils

import (
	"fmt"
	"math"
)

// CheckMultiplyOverflow checks if multiplying two uint64 values would overflow.
// Returns an error if overflow would occur.
func CheckMultiplyOverflow(a, b uint64) error {
	if a == 0 || b == 0 {
		return nil // No overflow when either is zero
	}

	if a > math.MaxUint64/b {
		return fmt.Errorf("multiplication overflow: %d * %d exceeds uint64 max", a, b)
	}

	return nil
}

// SafeMultiply multiplies two uint64 values and returns the result if no overflow occurs.
// Returns 0 and an error if overflow would occur.
func SafeMultiply(a, b uint64) (uint64, error) {
	if err := CheckMultiplyOverflow(a, b); err != nil {
		return 0, err
	}
	return a * b, nil
}

// SafeAdd adds two uint64 values, returning an error if the sum would overflow.
func SafeAdd(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, fmt.Errorf("addition overflow: %d + %d exceeds uint64 max", a, b)
	}
	return a + b, nil
}

// AccumulateBitSize folds freq[i]*bitLen[i] into the running total used for
// a codebook's data_bit_size (spec: data_bit_size == sum freq[i] * bit_len[i]).
// Every term and the running total are overflow-checked because an
// adversarial or pathological input (e.g. skewed frequencies pushing code
// lengths toward SymbolCode's width) could in principle overflow a naive
// 64-bit accumulation.
func AccumulateBitSize(total uint64, freq uint64, bitLen uint8) (uint64, error) {
	term, err := SafeMultiply(freq, uint64(bitLen))
	if err != nil {
		return 0, fmt.Errorf("bit-size term overflow: %w", err)
	}
	sum, err := SafeAdd(total, term)
	if err != nil {
		return 0, fmt.Errorf("bit-size accumulation overflow: %w", err)
	}
	return sum, nil
}

// ValidateBufferSize validates that a buffer size is within reasonable limits.
func ValidateBufferSize(size, maxSize uint64, description string) error {
	if size > maxSize {
		return fmt.Errorf("%s: size %d exceeds maximum %d", description, size, maxSize)
	}
	return nil
}

// Common buffer size limits for the archiver.
const (
	// MaxMemberSize caps the size of a single archived member read fully
	// into memory during frequency analysis and encoding (4GB).
	MaxMemberSize = 4 * 1024 * 1024 * 1024

	// MaxTreeDepth is the widest a SymbolCode's bit_len may grow; beyond
	// this the code no longer fits the widened u64 code word safely for
	// every caller (spec §4.3/§9).
	MaxTreeDepth = 63
)
