package cpu

import "encoding/binary"

// CPUID leaves, result bits and XCR0 bits consulted on x86.
//
//	query          register  bit   feature
//	leaf 0         EAX       -     highest standard leaf
//	leaf 0         EBX:EDX:ECX -   vendor string
//	leaf 1         EDX       23    MMX
//	leaf 1         EDX       25    SSE
//	leaf 1         EDX       26    SSE2
//	leaf 1         ECX       0     SSE3
//	leaf 1         ECX       9     SSSE3
//	leaf 1         ECX       19    SSE4.1
//	leaf 1         ECX       20    SSE4.2
//	leaf 1         ECX       27    OSXSAVE (XGETBV enabled by the OS)
//	leaf 1         ECX       28    AVX
//	leaf 7 sub 0   EBX       5     AVX2
//	XGETBV(0)      XCR0      1     XMM state
//	XGETBV(0)      XCR0      2     YMM state
const (
	leafVendor   uint32 = 0x0
	leafFeatures uint32 = 0x1
	leafExtended uint32 = 0x7

	edxMMX  = 1 << 23
	edxSSE  = 1 << 25
	edxSSE2 = 1 << 26

	ecxSSE3    = 1 << 0
	ecxSSSE3   = 1 << 9
	ecxSSE41   = 1 << 19
	ecxSSE42   = 1 << 20
	ecxOSXSAVE = 1 << 27
	ecxAVX     = 1 << 28

	ebx7AVX2 = 1 << 5

	xcr0Selector uint32 = 0
	xcr0XMM             = 1 << 1
	xcr0YMM             = 1 << 2
	xcr0AVXState        = xcr0XMM | xcr0YMM
)

// x86Querier issues the identification and extended-state reads.
type x86Querier interface {
	cpuid(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)
	xgetbv(index uint32) (eax, edx uint32)
}

// decodeX86 builds a descriptor from CPUID and XCR0.
//
// XGETBV raises #UD when CR4.OSXSAVE is clear, so it is issued only after
// leaf 1 has reported OSXSAVE.
func decodeX86(q x86Querier) Features {
	var f Features

	maxLeaf, ebx, ecx, edx := q.cpuid(leafVendor, 0)
	f.Vendor = vendorString(ebx, edx, ecx)
	if maxLeaf < leafFeatures {
		return f
	}

	_, _, ecx1, edx1 := q.cpuid(leafFeatures, 0)
	f.HasMMX = edx1&edxMMX != 0
	f.HasSSE = edx1&edxSSE != 0
	f.HasSSE2 = edx1&edxSSE2 != 0
	f.HasSSE3 = ecx1&ecxSSE3 != 0
	f.HasSSSE3 = ecx1&ecxSSSE3 != 0
	f.HasSSE41 = ecx1&ecxSSE41 != 0
	f.HasSSE42 = ecx1&ecxSSE42 != 0
	f.HasOSXSAVE = ecx1&ecxOSXSAVE != 0

	if f.HasOSXSAVE {
		xcr0, _ := q.xgetbv(xcr0Selector)
		f.HasOSAVXState = xcr0&xcr0AVXState == xcr0AVXState
	}
	f.HasAVX = ecx1&ecxAVX != 0 && f.HasOSXSAVE && f.HasOSAVXState

	if maxLeaf >= leafExtended {
		_, ebx7, _, _ := q.cpuid(leafExtended, 0)
		f.HasAVX2 = f.HasAVX && ebx7&ebx7AVX2 != 0
	}

	f.normalize()
	return f
}

func vendorString(ebx, edx, ecx uint32) string {
	if ebx|edx|ecx == 0 {
		return ""
	}
	var b [12]byte
	binary.LittleEndian.PutUint32(b[0:], ebx)
	binary.LittleEndian.PutUint32(b[4:], edx)
	binary.LittleEndian.PutUint32(b[8:], ecx)
	return string(b[:])
}
