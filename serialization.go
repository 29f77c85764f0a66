package rangemax

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const smallEncoding int32 = 1

// AsBytes serializes the accumulator state into a compact byte
// representation: a fixed big-endian header (encoding version,
// dimension, update count) followed by the n+1 difference entries as
// zig-zag base-128 varints. Entries are mostly zero for sparse update
// sets, so the payload stays small.
func (a Accumulator) AsBytes() ([]byte, error) {
	buffer := new(bytes.Buffer)

	if err := binary.Write(buffer, binary.BigEndian, smallEncoding); err != nil {
		return nil, err
	}
	if err := binary.Write(buffer, binary.BigEndian, a.n); err != nil {
		return nil, err
	}
	if err := binary.Write(buffer, binary.BigEndian, a.count); err != nil {
		return nil, err
	}

	for _, d := range a.diff {
		encodeInt(buffer, d)
	}

	return buffer.Bytes(), nil
}

// FromBytes reads an accumulator from the representation AsBytes
// produces.
func FromBytes(buf *bytes.Reader, options ...accumulatorOption) (*Accumulator, error) {
	var encoding int32
	if err := binary.Read(buf, binary.BigEndian, &encoding); err != nil {
		return nil, err
	}

	if encoding != smallEncoding {
		return nil, fmt.Errorf("Unsupported encoding version: %d", encoding)
	}

	var n int64
	if err := binary.Read(buf, binary.BigEndian, &n); err != nil {
		return nil, err
	}

	var count int64
	if err := binary.Read(buf, binary.BigEndian, &count); err != nil {
		return nil, err
	}

	a, err := New(n, options...)
	if err != nil {
		return nil, err
	}

	for i := range a.diff {
		d, err := decodeInt(buf)
		if err != nil {
			return nil, err
		}
		a.diff[i] = d
	}
	a.count = count

	return a, nil
}

func encodeInt(buf *bytes.Buffer, n int64) {
	// zig-zag so small negatives stay small on the wire
	encodeUint(buf, uint64((n<<1)^(n>>63)))
}

func decodeInt(buf *bytes.Reader) (int64, error) {
	z, err := decodeUint(buf)
	if err != nil {
		return 0, err
	}
	return int64(z>>1) ^ -int64(z&1), nil
}

func encodeUint(buf *bytes.Buffer, n uint64) {
	for n > 0x7f {
		buf.WriteByte(byte(0x80 | (0x7f & n)))
		n >>= 7
	}
	buf.WriteByte(byte(n))
}

func decodeUint(buf *bytes.Reader) (uint64, error) {
	v, err := buf.ReadByte()
	if err != nil {
		return 0, err
	}

	z := uint64(v & 0x7f)
	var shift uint = 7
	for v&0x80 != 0 {
		if shift > 63 {
			return 0, fmt.Errorf("This number looks too big for a varint")
		}
		v, err = buf.ReadByte()
		if err != nil {
			return 0, err
		}
		z |= uint64(v&0x7f) << shift
		shift += 7
	}
	return z, nil
}
