package codec

// Packer stores two codes per byte, the first in the low nibble.
type Packer struct {
	buf []byte
	n   int
}

// NewPacker returns a Packer sized for the given number of codes.
func NewPacker(codes int) *Packer {
	if codes < 0 {
		codes = 0
	}
	return &Packer{buf: make([]byte, 0, (codes+1)/2)}
}

func (p *Packer) Add(code byte) {
	code &= 0x0f
	if p.n%2 == 0 {
		p.buf = append(p.buf, code)
	} else {
		p.buf[len(p.buf)-1] |= code << 4
	}
	p.n++
}

// Len returns the number of codes added.
func (p *Packer) Len() int {
	return p.n
}

func (p *Packer) Bytes() []byte {
	return p.buf
}

// Pack packs a code sequence into ceil(len(codes)/2) bytes.
func Pack(codes []byte) []byte {
	p := NewPacker(len(codes))
	for _, c := range codes {
		p.Add(c)
	}
	return p.Bytes()
}

// Unpack splits data back into n codes, low nibble first.
// A negative n unpacks every nibble.
func Unpack(data []byte, n int) []byte {
	if n < 0 || n > 2*len(data) {
		n = 2 * len(data)
	}
	codes := make([]byte, n)
	for i := range codes {
		b := data[i/2]
		if i%2 == 0 {
			codes[i] = b & 0x0f
		} else {
			codes[i] = b >> 4
		}
	}
	return codes
}
