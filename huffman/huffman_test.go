// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/Arshpreet07/File-compressor/huffman"
)

const (
	randSeed   = 0x5a025ca11825a5e7
	iterations = 50
)

var rng *rand.Rand

// randomInput returns data drawn from a skewed distribution over a random subset of octets.
func randomInput() []byte {
	alphabet := make([]byte, 1+rng.Intn(huffman.TotalSymbols))
	for i := range alphabet {
		alphabet[i] = uint8(rng.Int())
	}

	data := make([]byte, 1+rng.Intn(4096))
	for i := range data {
		// Squaring the index favors the front of the alphabet.
		r := rng.Float64()
		data[i] = alphabet[int(r*r*float64(len(alphabet)))]
	}
	return data
}

func mustCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	packed, err := huffman.Compress(data)
	if err != nil {
		t.Fatalf("compressing %d bytes: %v", len(data), err)
	}
	return packed
}

func TestConcreteScenario(t *testing.T) {
	input := []byte("aaabbc")
	packed := mustCompress(t, input)

	c, err := huffman.ParseContainer(packed)
	if err != nil {
		t.Fatalf("parsing container: %v", err)
	}
	for sym, f := range c.Frequencies {
		var want uint32
		switch sym {
		case 'a':
			want = 3
		case 'b':
			want = 2
		case 'c':
			want = 1
		}
		if f != want {
			t.Errorf("frequency of 0x%02x is %d, want %d", sym, f, want)
		}
	}

	// c+b merge first; 'a' then ties with the merged node and wins as the older node.
	codes := huffman.DeriveCodes(huffman.BuildTree(&c.Frequencies))
	for sym, want := range map[byte]string{'a': "0", 'c': "10", 'b': "11"} {
		if got := codes[sym].String(); got != want {
			t.Errorf("code for %q is %s, want %s", sym, got, want)
		}
	}

	// 0 0 0 11 11 10 -> 00011111 0(0000000)
	if !bytes.Equal(c.Payload, []byte{0x1f, 0x00}) || c.Padding != 7 {
		t.Errorf("payload %x padding %d, want 1f00 padding 7", c.Payload, c.Padding)
	}
	if len(packed) != huffman.HeaderSize+2 {
		t.Errorf("container is %d bytes, want %d", len(packed), huffman.HeaderSize+2)
	}

	out, err := huffman.Decompress(packed)
	if err != nil {
		t.Fatalf("decompressing: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Errorf("round trip gave %q, want %q", out, input)
	}
}

func TestRoundTrip(t *testing.T) {
	rng = rand.New(rand.NewSource(randSeed))

	for iteration := 0; iteration < iterations; iteration++ {
		input := randomInput()
		packed := mustCompress(t, input)

		out, err := huffman.Decompress(packed)
		if err != nil {
			t.Fatalf("input #%d (%d bytes): %v", iteration, len(input), err)
		}
		if !bytes.Equal(out, input) {
			t.Fatalf("input #%d failed to loop around %d -> %d -> %d bytes",
				iteration, len(input), len(packed), len(out))
		}
	}
}

func TestRoundTripEveryOctet(t *testing.T) {
	input := make([]byte, 0, 3*huffman.TotalSymbols)
	for sym := 0; sym < huffman.TotalSymbols; sym++ {
		for k := 0; k <= sym%3; k++ {
			input = append(input, uint8(sym))
		}
	}

	out, err := huffman.Decompress(mustCompress(t, input))
	if err != nil {
		t.Fatalf("decompressing: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Errorf("round trip over all octets differs")
	}
}

func TestEmptyInput(t *testing.T) {
	packed, err := huffman.Compress(nil)
	if !errors.Is(err, huffman.ErrEmptyInput) {
		t.Fatalf("got error %v, want ErrEmptyInput", err)
	}
	if packed != nil {
		t.Errorf("got %d container bytes for empty input", len(packed))
	}
}

func TestSingleOctet(t *testing.T) {
	for _, n := range []int{1, 7, 8, 9, 1000} {
		input := bytes.Repeat([]byte{'z'}, n)
		packed := mustCompress(t, input)

		c, err := huffman.ParseContainer(packed)
		if err != nil {
			t.Fatalf("n=%d: parsing container: %v", n, err)
		}
		if wantLen := (n + 7) / 8; len(c.Payload) != wantLen {
			t.Errorf("n=%d: payload is %d bytes, want %d", n, len(c.Payload), wantLen)
		}
		for _, b := range c.Payload {
			if b != 0 {
				t.Errorf("n=%d: payload octet %08b, want all-zero codewords", n, b)
			}
		}

		out, err := huffman.Decompress(packed)
		if err != nil {
			t.Fatalf("n=%d: decompressing: %v", n, err)
		}
		if !bytes.Equal(out, input) {
			t.Errorf("n=%d: round trip gave %d bytes", n, len(out))
		}
	}
}

func TestHeaderIntegrity(t *testing.T) {
	rng = rand.New(rand.NewSource(randSeed))

	for iteration := 0; iteration < iterations; iteration++ {
		input := randomInput()
		packed := mustCompress(t, input)

		var total uint64
		for sym := 0; sym < huffman.TotalSymbols; sym++ {
			total += uint64(binary.BigEndian.Uint32(packed[sym*4:]))
		}
		if total != uint64(len(input)) {
			t.Errorf("input #%d: header totals %d, input has %d bytes", iteration, total, len(input))
		}
	}
}

func TestPaddingBound(t *testing.T) {
	rng = rand.New(rand.NewSource(randSeed))

	for iteration := 0; iteration < iterations; iteration++ {
		input := randomInput()
		ft := huffman.Count(input)
		codes := huffman.DeriveCodes(huffman.BuildTree(&ft))
		bitCount := codes.EncodedBits(&ft)

		c, err := huffman.ParseContainer(mustCompress(t, input))
		if err != nil {
			t.Fatalf("input #%d: %v", iteration, err)
		}
		if c.Padding > 7 {
			t.Errorf("input #%d: padding %d out of range", iteration, c.Padding)
		}
		if (c.Padding == 0) != (bitCount%8 == 0) {
			t.Errorf("input #%d: padding %d for %d bits", iteration, c.Padding, bitCount)
		}
		if uint64(len(c.Payload))*8-uint64(c.Padding) != bitCount {
			t.Errorf("input #%d: %d payload bytes and %d filler bits for %d bits",
				iteration, len(c.Payload), c.Padding, bitCount)
		}
	}
}

func TestCorruptionDetection(t *testing.T) {
	rng = rand.New(rand.NewSource(randSeed))

	inputs := [][]byte{[]byte("aaabbc"), []byte("z"), bytes.Repeat([]byte("abcd"), 2)}
	for iteration := 0; iteration < iterations; iteration++ {
		inputs = append(inputs, randomInput())
	}

	for i, input := range inputs {
		packed := mustCompress(t, input)
		truncated := packed[:len(packed)-1]

		out, err := huffman.Decompress(truncated)
		if !errors.Is(err, huffman.ErrTruncatedStream) {
			t.Errorf("input #%d: truncated container gave %v (%d bytes), want ErrTruncatedStream",
				i, err, len(out))
		}
		if out != nil {
			t.Errorf("input #%d: truncated container produced partial output", i)
		}
	}
}

func TestMalformedContainer(t *testing.T) {
	valid := mustCompress(t, bytes.Repeat([]byte("abcd"), 2))

	badPadding := append([]byte(nil), valid...)
	badPadding[huffman.HeaderSize-1] = 8

	excess := append(append([]byte(nil), valid...), 0x00)

	single := mustCompress(t, []byte("zzzz"))
	badCode := append([]byte(nil), single...)
	badCode[huffman.HeaderSize] = 0x80

	cases := []struct {
		name string
		data []byte
		how  huffman.ContainerErrorHow
	}{
		{"empty", nil, huffman.ContainerTooShort},
		{"header only", valid[:huffman.HeaderSize-1], huffman.ContainerTooShort},
		{"bad padding", badPadding, huffman.ContainerBadPadding},
		{"excess payload", excess, huffman.ContainerExcessData},
		{"single leaf bit 1", badCode, huffman.ContainerBadCode},
	}

	for _, tc := range cases {
		_, err := huffman.Decompress(tc.data)
		if !errors.Is(err, huffman.ErrMalformedContainer) {
			t.Errorf("%s: got %v, want ErrMalformedContainer", tc.name, err)
			continue
		}

		var ce *huffman.ContainerError
		if !errors.As(err, &ce) || ce.How != tc.how {
			t.Errorf("%s: got %v, want problem %d", tc.name, err, tc.how)
		}
	}
}

func TestAllZeroHeader(t *testing.T) {
	container := make([]byte, huffman.HeaderSize)
	out, err := huffman.Decompress(container)
	if err != nil {
		t.Fatalf("all-zero header: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("all-zero header decoded to %d bytes", len(out))
	}
}

func TestUnknownByte(t *testing.T) {
	ft := huffman.Count([]byte("abc"))
	codes := huffman.DeriveCodes(huffman.BuildTree(&ft))

	_, err := huffman.Encode([]byte("abx"), &codes)
	if !errors.Is(err, huffman.ErrUnknownByte) {
		t.Errorf("got %v, want ErrUnknownByte", err)
	}
}

func TestMarshalRejectsBadPadding(t *testing.T) {
	c := &huffman.Container{Padding: 9}
	if _, err := c.MarshalBinary(); !errors.Is(err, huffman.ErrMalformedContainer) {
		t.Errorf("got %v, want ErrMalformedContainer", err)
	}
}

func TestStats(t *testing.T) {
	c, err := huffman.CompressContainer([]byte("aaabbc"))
	if err != nil {
		t.Fatalf("compressing: %v", err)
	}

	stats := c.Stats()
	if stats.OriginalSize != 6 || stats.CompressedSize != huffman.HeaderSize+2 {
		t.Errorf("stats %+v", stats)
	}
	if stats.Reduction() >= 0 {
		t.Errorf("a tiny input cannot shrink, got %.2f%%", stats.Reduction())
	}

	big := huffman.Stats{OriginalSize: 4000, CompressedSize: 1000}
	if r := big.Reduction(); r != 75 {
		t.Errorf("reduction %.2f, want 75", r)
	}
	if r := (huffman.Stats{}).Reduction(); r != 0 {
		t.Errorf("reduction of empty original %.2f, want 0", r)
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	input := []byte("the quick brown fox jumps over the lazy dog\n")

	inPath := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(inPath, input, 0644); err != nil {
		t.Fatal(err)
	}

	packed, err := huffman.CompressFile(inPath)
	if err != nil {
		t.Fatalf("CompressFile: %v", err)
	}

	packedPath := filepath.Join(dir, "compressed.bin")
	if err := os.WriteFile(packedPath, packed, 0644); err != nil {
		t.Fatal(err)
	}

	out, err := huffman.DecompressFile(packedPath)
	if err != nil {
		t.Fatalf("DecompressFile: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Errorf("file round trip gave %q", out)
	}

	emptyPath := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(emptyPath, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := huffman.CompressFile(emptyPath); !errors.Is(err, huffman.ErrEmptyInput) {
		t.Errorf("empty file gave %v, want ErrEmptyInput", err)
	}

	if _, err := huffman.DecompressFile(filepath.Join(dir, "missing.bin")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file gave %v, want os.ErrNotExist", err)
	}
}
