// Package dmr implements the DMR voice frame structure handed to the
// error correction layer: frame geometry, sync pattern matching, embedded
// signalling and the payload text encodings.
package dmr

const (
	CACHBits                    = 24
	BurstBits                   = 264
	FrameBits                   = CACHBits + BurstBits
	VoiceHalfBits               = 108
	VoiceBits                   = 2 * VoiceHalfBits
	SyncBits                    = 48
	EMBHalfBits                 = 8
	EMBBits                     = 2 * EMBHalfBits
	EMBSignallingLCFragmentBits = 32
)

// Field offsets within a 288 bit frame.
const (
	VoiceAOffset = CACHBits
	SyncOffset   = VoiceAOffset + VoiceHalfBits
	VoiceBOffset = SyncOffset + SyncBits
)
