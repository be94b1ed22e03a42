package script

// Sighash type tags. AnyoneCanPay may be OR'd onto any of the base types.
const (
	SigHashAll          = 0x01
	SigHashNone         = 0x02
	SigHashSingle       = 0x03
	SigHashAnyoneCanPay = 0x80
)

// sigHashNames is the fixed, process-wide mnemonic table consulted when
// disassembly strips a trailing sighash byte.
var sigHashNames = map[byte]string{
	SigHashAll:                         "ALL",
	SigHashAll | SigHashAnyoneCanPay:   "ALL|ANYONECANPAY",
	SigHashNone:                        "NONE",
	SigHashNone | SigHashAnyoneCanPay:  "NONE|ANYONECANPAY",
	SigHashSingle:                      "SINGLE",
	SigHashSingle | SigHashAnyoneCanPay: "SINGLE|ANYONECANPAY",
}

// checkSignatureEncoding applies the strict-encoding rules to a candidate
// signature-plus-sighash blob. It decides only whether the bytes are shaped
// like a signature; no cryptographic verification happens here. Pushed data
// that fails this check is rendered as plain hex by the disassembler.
func checkSignatureEncoding(sig []byte) bool {
	if !isValidSignatureEncoding(sig) {
		return false
	}
	return isDefinedHashType(sig[len(sig)-1])
}

func isDefinedHashType(ht byte) bool {
	base := ht & ^byte(SigHashAnyoneCanPay)
	return base >= SigHashAll && base <= SigHashSingle
}

// isValidSignatureEncoding checks the canonical DER layout
// 0x30 [total-len] 0x02 [R-len] [R] 0x02 [S-len] [S] [sighash].
func isValidSignatureEncoding(sig []byte) bool {
	if len(sig) < 9 || len(sig) > 73 {
		return false
	}

	if sig[0] != 0x30 {
		return false
	}

	// length covers everything but the type byte, its own byte and the
	// trailing sighash byte
	if int(sig[1]) != len(sig)-3 {
		return false
	}

	lenR := int(sig[3])
	if 5+lenR >= len(sig) {
		return false
	}

	lenS := int(sig[5+lenR])
	if lenR+lenS+7 != len(sig) {
		return false
	}

	if sig[2] != 0x02 || lenR == 0 {
		return false
	}
	if sig[4]&0x80 != 0 {
		return false
	}
	// no unnecessary null prefix on R
	if lenR > 1 && sig[4] == 0x00 && sig[5]&0x80 == 0 {
		return false
	}

	if sig[lenR+4] != 0x02 || lenS == 0 {
		return false
	}
	if sig[lenR+6]&0x80 != 0 {
		return false
	}
	if lenS > 1 && sig[lenR+6] == 0x00 && sig[lenR+7]&0x80 == 0 {
		return false
	}

	return true
}
