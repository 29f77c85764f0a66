package rangemax

import (
	"bytes"
	"encoding/binary"
	"math"
	"math/rand"
	"testing"
)

func TestEncodeDecode(t *testing.T) {
	testInts := []int64{
		0, 1, -1, 63, 64, -64, -65, 10000, -10000,
		math.MaxInt64, math.MinInt64,
	}
	buf := new(bytes.Buffer)

	for _, i := range testInts {
		encodeInt(buf, i)
	}

	readBuf := bytes.NewReader(buf.Bytes())
	for _, i := range testInts {
		j, err := decodeInt(readBuf)

		if err != nil {
			t.Fatalf(err.Error())
		}

		if i != j {
			t.Errorf("Basic encode/decode failed. Got %d, wanted %d", j, i)
		}
	}
}

func TestDecodeTruncated(t *testing.T) {
	buf := new(bytes.Buffer)
	encodeInt(buf, math.MaxInt64)

	truncated := buf.Bytes()[:buf.Len()-1]

	if _, err := decodeInt(bytes.NewReader(truncated)); err == nil {
		t.Errorf("Decoding a truncated varint should give an error")
	}
}

func TestSerialization(t *testing.T) {
	a, err := New(500)
	if err != nil {
		t.Fatalf(err.Error())
	}

	for i := 0; i < 100; i++ {
		left := rand.Int63n(500) + 1
		right := left + rand.Int63n(500-left+1)
		_ = a.Add(left, right, rand.Int63n(2000)-1000)
	}

	serialized, err := a.AsBytes()
	if err != nil {
		t.Fatalf(err.Error())
	}

	b, err := FromBytes(bytes.NewReader(serialized))
	if err != nil {
		t.Fatalf(err.Error())
	}

	if a.n != b.n || a.count != b.count || a.Max() != b.Max() {
		t.Errorf("Deserialized to something different. a=%s b=%s", a, b)
	}

	for _, i := range []int64{1, 250, 500} {
		x, _ := a.ValueAt(i)
		y, err := b.ValueAt(i)

		if err != nil {
			t.Fatalf(err.Error())
		}

		if x != y {
			t.Errorf("Cell %d changed across the round trip: %d != %d", i, x, y)
		}
	}
}

func TestUnsupportedEncoding(t *testing.T) {
	buffer := new(bytes.Buffer)
	_ = binary.Write(buffer, binary.BigEndian, int32(999))

	if _, err := FromBytes(bytes.NewReader(buffer.Bytes())); err == nil {
		t.Errorf("Expected an error about the unknown encoding version")
	}
}

func TestDeserializeGarbage(t *testing.T) {
	if _, err := FromBytes(bytes.NewReader([]byte{0x01})); err == nil {
		t.Errorf("Deserializing a short buffer should give an error")
	}

	// valid header claiming dimension 0
	buffer := new(bytes.Buffer)
	_ = binary.Write(buffer, binary.BigEndian, smallEncoding)
	_ = binary.Write(buffer, binary.BigEndian, int64(0))
	_ = binary.Write(buffer, binary.BigEndian, int64(0))

	if _, err := FromBytes(bytes.NewReader(buffer.Bytes())); err == nil {
		t.Errorf("Deserializing an invalid dimension should give an error")
	}
}
