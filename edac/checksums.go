package edac

// CCITT80Checksums holds the CRC-CCITT checksum of each single-bit error
// in a 16 bit protected 80 bit message, plus 16 checksums covering bit
// errors in the checksum field itself.
//
// Generated by GenerateChecksums(80, 16, 0x11021, true).
var CCITT80Checksums = []uint32{
	0x1bcb, 0x8de5, 0xc6f2, 0x6b69, 0xb5b4, 0x52ca, 0x2175, 0x90ba,
	0x404d, 0xa026, 0x5803, 0xac01, 0xd600, 0x6310, 0x3998, 0x14dc,
	0x027e, 0x092f, 0x8497, 0xc24b, 0xe125, 0xf092, 0x7059, 0xb82c,
	0x5406, 0x2213, 0x9109, 0xc884, 0x6c52, 0x3e39, 0x9f1c, 0x479e,
	0x2bdf, 0x95ef, 0xcaf7, 0xe57b, 0xf2bd, 0xf95e, 0x74bf, 0xba5f,
	0xdd2f, 0xee97, 0xf74b, 0xfba5, 0xfdd2, 0x76f9, 0xbb7c, 0x55ae,
	0x22c7, 0x9163, 0xc8b1, 0xe458, 0x7a3c, 0x350e, 0x1297, 0x894b,
	0xc4a5, 0xe252, 0x7939, 0xbc9c, 0x565e, 0x233f, 0x919f, 0xc8cf,
	0xe467, 0xf233, 0xf919, 0xfc8c, 0x7656, 0x333b, 0x999d, 0xccce,
	0x6e77, 0xb73b, 0xdb9d, 0xedce, 0x7ef7, 0xbf7b, 0xdfbd, 0xefde,
	0x0001, 0x0002, 0x0004, 0x0008, 0x0010, 0x0020, 0x0040, 0x0080,
	0x0100, 0x0200, 0x0400, 0x0800, 0x1000, 0x2000, 0x4000, 0x8000,
}

// CRC9Checksums holds the CRC-9 checksum of each single-bit error in a
// confirmed packet data block: 7 data bits ahead of the embedded
// checksum field and 128 behind it, with the table generated over the
// logically contiguous 135 bit data stream.
//
// Generated by GenerateChecksums(135, 9, 0x259, false).
var CRC9Checksums = []uint32{
	0x1e7, 0x1f3, 0x1f9, 0x1fc, 0x0d2, 0x045, 0x122, 0x0bd, 0x15e, 0x083,
	0x141, 0x1a0, 0x0fc, 0x052, 0x005, 0x102, 0x0ad, 0x156, 0x087, 0x143,
	0x1a1, 0x1d0, 0x0c4, 0x04e, 0x00b, 0x105, 0x182, 0x0ed, 0x176, 0x097,
	0x14b, 0x1a5, 0x1d2, 0x0c5, 0x162, 0x09d, 0x14e, 0x08b, 0x145, 0x1a2,
	0x0fd, 0x17e, 0x093, 0x149, 0x1a4, 0x0fe, 0x053, 0x129, 0x194, 0x0e6,
	0x05f, 0x12f, 0x197, 0x1cb, 0x1e5, 0x1f2, 0x0d5, 0x16a, 0x099, 0x14c,
	0x08a, 0x069, 0x134, 0x0b6, 0x077, 0x13b, 0x19d, 0x1ce, 0x0cb, 0x165,
	0x1b2, 0x0f5, 0x17a, 0x091, 0x148, 0x088, 0x068, 0x018, 0x020, 0x03c,
	0x032, 0x035, 0x11a, 0x0a1, 0x150, 0x084, 0x06e, 0x01b, 0x10d, 0x186,
	0x0ef, 0x177, 0x1bb, 0x1dd, 0x1ee, 0x0db, 0x16d, 0x1b6, 0x0f7, 0x17b,
	0x1bd, 0x1de, 0x0c3, 0x161, 0x1b0, 0x0f4, 0x056, 0x007, 0x103, 0x181,
	0x1c0, 0x0cc, 0x04a, 0x009, 0x104, 0x0ae, 0x07b, 0x13d, 0x19e, 0x0e3,
	0x171, 0x1b8, 0x0f0, 0x054, 0x006, 0x02f, 0x117, 0x18b, 0x1c5, 0x1e2,
	0x0dd, 0x16e, 0x09b, 0x14d, 0x1a6,
}

// PDU1Checksums holds the CRC-32 checksum of each single-bit error in a
// header plus one block (64 data bit) packet data unit, plus 32
// checksums covering bit errors in the checksum field itself.
//
// Generated by GenerateChecksums(64, 32, 0x104c11db7, true).
var PDU1Checksums = []uint32{
	0x86ffaacc, 0x411f5bbd, 0xa08fadde, 0x52275834, 0x2b7322c1,
	0x95b99160, 0x48bc466b, 0xa45e2335, 0xd22f119a, 0x6b770616,
	0x37db0dd0, 0x198d0833, 0x8cc68419, 0xc663420c, 0x61512fdd,
	0xb0a897ee, 0x5a34c52c, 0x2f7aec4d, 0x97bd7626, 0x49be35c8,
	0x26bf943f, 0x935fca1f, 0xc9afe50f, 0xe4d7f287, 0xf26bf943,
	0xf935fca1, 0xfc9afe50, 0x7c2df1f3, 0xbe16f8f9, 0xdf0b7c7c,
	0x6de530e5, 0xb6f29872, 0x5919c2e2, 0x2eec6faa, 0x1516b90e,
	0x08ebd25c, 0x061567f5, 0x830ab3fa, 0x43e5d726, 0x23926548,
	0x13a9bc7f, 0x89d4de3f, 0xc4ea6f1f, 0xe275378f, 0xf13a9bc7,
	0xf89d4de3, 0xfc4ea6f1, 0xfe275378, 0x7d732767, 0xbeb993b3,
	0xdf5cc9d9, 0xefae64ec, 0x75b7bcad, 0xbadbde56, 0x5f0d61f0,
	0x2de63e23, 0x96f31f11, 0xcb798f88, 0x67dc491f, 0xb3ee248f,
	0xd9f71247, 0xecfb8923, 0xf67dc491, 0xfb3ee248, 0x00000001,
	0x00000002, 0x00000004, 0x00000008, 0x00000010, 0x00000020,
	0x00000040, 0x00000080, 0x00000100, 0x00000200, 0x00000400,
	0x00000800, 0x00001000, 0x00002000, 0x00004000, 0x00008000,
	0x00010000, 0x00020000, 0x00040000, 0x00080000, 0x00100000,
	0x00200000, 0x00400000, 0x00800000, 0x01000000, 0x02000000,
	0x04000000, 0x08000000, 0x10000000, 0x20000000, 0x40000000,
	0x80000000,
}

// PDU2Checksums holds the CRC-32 checksum of each single-bit error in a
// header plus two block (160 data bit) packet data unit.
//
// Generated by GenerateChecksums(160, 32, 0x104c11db7, true).
var PDU2Checksums = []uint32{
	0x9d231959, 0xce918cac, 0x6528488d, 0xb2942446, 0x5b2a9cf8,
	0x2ff5c0a7, 0x97fae053, 0xcbfd7029, 0xe5feb814, 0x709fd2d1,
	0xb84fe968, 0x5e477a6f, 0xaf23bd37, 0xd791de9b, 0xebc8ef4d,
	0xf5e477a6, 0x7892b508, 0x3e29d45f, 0x9f14ea2f, 0xcf8a7517,
	0xe7c53a8b, 0xf3e29d45, 0xf9f14ea2, 0x7e98298a, 0x3d2c9a1e,
	0x1cf6c3d4, 0x0c1bef31, 0x860df798, 0x41667517, 0xa0b33a8b,
	0xd0599d45, 0xe82ccea2, 0x7676e98a, 0x395bfa1e, 0x1ecd73d4,
	0x0d063731, 0x86831b98, 0x41210317, 0xa090818b, 0xd04840c5,
	0xe8242062, 0x76729eea, 0x3959c1ae, 0x1ecc6e0c, 0x0d06b9dd,
	0x86835cee, 0x412120ac, 0x22f01e8d, 0x91780f46, 0x4adc8978,
	0x270eca67, 0x93876533, 0xc9c3b299, 0xe4e1d94c, 0x7010627d,
	0xb808313e, 0x5e649644, 0x2d52c5f9, 0x96a962fc, 0x49343fa5,
	0xa49a1fd2, 0x502d8132, 0x2a764e42, 0x175ba9fa, 0x09cd5a26,
	0x068623c8, 0x01239f3f, 0x8091cf9f, 0xc048e7cf, 0xe02473e7,
	0xf01239f3, 0xf8091cf9, 0xfc048e7c, 0x7c62c9e5, 0xbe3164f2,
	0x5d783ca2, 0x2cdc908a, 0x140ec69e, 0x0867ed94, 0x06537811,
	0x8329bc08, 0x43f450df, 0xa1fa286f, 0xd0fd1437, 0xe87e8a1b,
	0xf43f450d, 0xfa1fa286, 0x7f6f5f98, 0x3dd72117, 0x9eeb908b,
	0xcf75c845, 0xe7bae422, 0x71bdfcca, 0x3abe70be, 0x1f3fb684,
	0x0dff5599, 0x86ffaacc, 0x411f5bbd, 0xa08fadde, 0x52275834,
	0x2b7322c1, 0x95b99160, 0x48bc466b, 0xa45e2335, 0xd22f119a,
	0x6b770616, 0x37db0dd0, 0x198d0833, 0x8cc68419, 0xc663420c,
	0x61512fdd, 0xb0a897ee, 0x5a34c52c, 0x2f7aec4d, 0x97bd7626,
	0x49be35c8, 0x26bf943f, 0x935fca1f, 0xc9afe50f, 0xe4d7f287,
	0xf26bf943, 0xf935fca1, 0xfc9afe50, 0x7c2df1f3, 0xbe16f8f9,
	0xdf0b7c7c, 0x6de530e5, 0xb6f29872, 0x5919c2e2, 0x2eec6faa,
	0x1516b90e, 0x08ebd25c, 0x061567f5, 0x830ab3fa, 0x43e5d726,
	0x23926548, 0x13a9bc7f, 0x89d4de3f, 0xc4ea6f1f, 0xe275378f,
	0xf13a9bc7, 0xf89d4de3, 0xfc4ea6f1, 0xfe275378, 0x7d732767,
	0xbeb993b3, 0xdf5cc9d9, 0xefae64ec, 0x75b7bcad, 0xbadbde56,
	0x5f0d61f0, 0x2de63e23, 0x96f31f11, 0xcb798f88, 0x67dc491f,
	0xb3ee248f, 0xd9f71247, 0xecfb8923, 0xf67dc491, 0xfb3ee248,
	0x00000001, 0x00000002, 0x00000004, 0x00000008, 0x00000010,
	0x00000020, 0x00000040, 0x00000080, 0x00000100, 0x00000200,
	0x00000400, 0x00000800, 0x00001000, 0x00002000, 0x00004000,
	0x00008000, 0x00010000, 0x00020000, 0x00040000, 0x00080000,
	0x00100000, 0x00200000, 0x00400000, 0x00800000, 0x01000000,
	0x02000000, 0x04000000, 0x08000000, 0x10000000, 0x20000000,
	0x40000000, 0x80000000,
}

// PDU3Checksums holds the CRC-32 checksum of each single-bit error in a
// header plus three block (256 data bit) packet data unit.
//
// Generated by GenerateChecksums(256, 32, 0x104c11db7, true).
var PDU3Checksums = []uint32{
	0xaa5fa470, 0x574f5ce3, 0xaba7ae71, 0xd5d3d738, 0x68896547,
	0xb444b2a3, 0xda225951, 0xed112ca8, 0x74e8188f, 0xba740c47,
	0xdd3a0623, 0xee9d0311, 0xf74e8188, 0x79c7ce1f, 0xbce3e70f,
	0xde71f387, 0xef38f9c3, 0xf79c7ce1, 0xfbce3e70, 0x7f8791e3,
	0xbfc3c8f1, 0xdfe1e478, 0x6d907ce7, 0xb6c83e73, 0xdb641f39,
	0xedb20f9c, 0x74b98915, 0xba5cc48a, 0x5f4eec9e, 0x2dc7f894,
	0x14837291, 0x8a41b948, 0x4740527f, 0xa3a0293f, 0xd1d0149f,
	0xe8e80a4f, 0xf4740527, 0xfa3a0293, 0xfd1d0149, 0xfe8e80a4,
	0x7d27ce89, 0xbe93e744, 0x5d297d79, 0xae94bebc, 0x552ad185,
	0xaa9568c2, 0x572a3aba, 0x29f59386, 0x169a4718, 0x092dad57,
	0x8496d6ab, 0xc24b6b55, 0xe125b5aa, 0x72f2540e, 0x3b19a4dc,
	0x1fec5cb5, 0x8ff62e5a, 0x459b99f6, 0x20ad4220, 0x12362fcb,
	0x891b17e5, 0xc48d8bf2, 0x60264b22, 0x3273ab4a, 0x1b595b7e,
	0x0fcc2364, 0x05869f69, 0x82c34fb4, 0x43012901, 0xa1809480,
	0x52a0c49b, 0xa950624d, 0xd4a83126, 0x68349648, 0x367ac5ff,
	0x9b3d62ff, 0xcd9eb17f, 0xe6cf58bf, 0xf367ac5f, 0xf9b3d62f,
	0xfcd9eb17, 0xfe6cf58b, 0xff367ac5, 0xff9b3d62, 0x7dad106a,
	0x3cb606ee, 0x1c3b8dac, 0x0c7d480d, 0x863ea406, 0x417fdcd8,
	0x22df60b7, 0x916fb05b, 0xc8b7d82d, 0xe45bec16, 0x704d78d0,
	0x3a4632b3, 0x9d231959, 0xce918cac, 0x6528488d, 0xb2942446,
	0x5b2a9cf8, 0x2ff5c0a7, 0x97fae053, 0xcbfd7029, 0xe5feb814,
	0x709fd2d1, 0xb84fe968, 0x5e477a6f, 0xaf23bd37, 0xd791de9b,
	0xebc8ef4d, 0xf5e477a6, 0x7892b508, 0x3e29d45f, 0x9f14ea2f,
	0xcf8a7517, 0xe7c53a8b, 0xf3e29d45, 0xf9f14ea2, 0x7e98298a,
	0x3d2c9a1e, 0x1cf6c3d4, 0x0c1bef31, 0x860df798, 0x41667517,
	0xa0b33a8b, 0xd0599d45, 0xe82ccea2, 0x7676e98a, 0x395bfa1e,
	0x1ecd73d4, 0x0d063731, 0x86831b98, 0x41210317, 0xa090818b,
	0xd04840c5, 0xe8242062, 0x76729eea, 0x3959c1ae, 0x1ecc6e0c,
	0x0d06b9dd, 0x86835cee, 0x412120ac, 0x22f01e8d, 0x91780f46,
	0x4adc8978, 0x270eca67, 0x93876533, 0xc9c3b299, 0xe4e1d94c,
	0x7010627d, 0xb808313e, 0x5e649644, 0x2d52c5f9, 0x96a962fc,
	0x49343fa5, 0xa49a1fd2, 0x502d8132, 0x2a764e42, 0x175ba9fa,
	0x09cd5a26, 0x068623c8, 0x01239f3f, 0x8091cf9f, 0xc048e7cf,
	0xe02473e7, 0xf01239f3, 0xf8091cf9, 0xfc048e7c, 0x7c62c9e5,
	0xbe3164f2, 0x5d783ca2, 0x2cdc908a, 0x140ec69e, 0x0867ed94,
	0x06537811, 0x8329bc08, 0x43f450df, 0xa1fa286f, 0xd0fd1437,
	0xe87e8a1b, 0xf43f450d, 0xfa1fa286, 0x7f6f5f98, 0x3dd72117,
	0x9eeb908b, 0xcf75c845, 0xe7bae422, 0x71bdfcca, 0x3abe70be,
	0x1f3fb684, 0x0dff5599, 0x86ffaacc, 0x411f5bbd, 0xa08fadde,
	0x52275834, 0x2b7322c1, 0x95b99160, 0x48bc466b, 0xa45e2335,
	0xd22f119a, 0x6b770616, 0x37db0dd0, 0x198d0833, 0x8cc68419,
	0xc663420c, 0x61512fdd, 0xb0a897ee, 0x5a34c52c, 0x2f7aec4d,
	0x97bd7626, 0x49be35c8, 0x26bf943f, 0x935fca1f, 0xc9afe50f,
	0xe4d7f287, 0xf26bf943, 0xf935fca1, 0xfc9afe50, 0x7c2df1f3,
	0xbe16f8f9, 0xdf0b7c7c, 0x6de530e5, 0xb6f29872, 0x5919c2e2,
	0x2eec6faa, 0x1516b90e, 0x08ebd25c, 0x061567f5, 0x830ab3fa,
	0x43e5d726, 0x23926548, 0x13a9bc7f, 0x89d4de3f, 0xc4ea6f1f,
	0xe275378f, 0xf13a9bc7, 0xf89d4de3, 0xfc4ea6f1, 0xfe275378,
	0x7d732767, 0xbeb993b3, 0xdf5cc9d9, 0xefae64ec, 0x75b7bcad,
	0xbadbde56, 0x5f0d61f0, 0x2de63e23, 0x96f31f11, 0xcb798f88,
	0x67dc491f, 0xb3ee248f, 0xd9f71247, 0xecfb8923, 0xf67dc491,
	0xfb3ee248, 0x00000001, 0x00000002, 0x00000004, 0x00000008,
	0x00000010, 0x00000020, 0x00000040, 0x00000080, 0x00000100,
	0x00000200, 0x00000400, 0x00000800, 0x00001000, 0x00002000,
	0x00004000, 0x00008000, 0x00010000, 0x00020000, 0x00040000,
	0x00080000, 0x00100000, 0x00200000, 0x00400000, 0x00800000,
	0x01000000, 0x02000000, 0x04000000, 0x08000000, 0x10000000,
	0x20000000, 0x40000000, 0x80000000,
}
