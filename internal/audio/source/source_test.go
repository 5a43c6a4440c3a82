package source

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/thesyncim/gopus"
	"github.com/thesyncim/gopus/container/ogg"

	"wav2adpcm/internal/audio/errs"
)

func writeWAV(t *testing.T, name string, rate, bits, channels int, data []int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, rate, bits, channels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bits,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return path
}

func TestOpenWAV(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		bits     int
		channels int
		data     []int
	}{
		{"mono16", 44100, 16, 1, []int{0, 1000, -1000, 32767, -32768}},
		{"stereo16", 48000, 16, 2, []int{1, 2, 3, 4, 5, 6}},
		{"mono24", 22050, 24, 1, []int{0, 8388607, -8388608}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeWAV(t, tt.name+".wav", tt.rate, tt.bits, tt.channels, tt.data)
			buf, err := Open(path)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			if buf.SampleRate != tt.rate || buf.Channels != tt.channels || buf.BitDepth != tt.bits {
				t.Fatalf("format = %d Hz %d ch %d bit", buf.SampleRate, buf.Channels, buf.BitDepth)
			}
			if len(buf.Data) != len(tt.data) {
				t.Fatalf("got %d samples, want %d", len(buf.Data), len(tt.data))
			}
			for i, v := range tt.data {
				if buf.Data[i] != float64(v) {
					t.Errorf("sample %d = %v, want %d", i, buf.Data[i], v)
				}
			}
		})
	}
}

func TestOpenUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp3")
	if err := os.WriteFile(path, []byte("ID3"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); !errors.Is(err, errs.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestOpenInvalidWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.wav")
	if err := os.WriteFile(path, []byte("this is not a riff file at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Open(path)
	if !errors.Is(err, errs.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.wav"))
	if !errors.Is(err, errs.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped ErrNotExist, got %v", err)
	}
}

func TestOpenInvalidOpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.opus")
	if err := os.WriteFile(path, []byte("definitely not an ogg stream"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); !errors.Is(err, errs.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

var (
	subFormatPCM   = [16]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71}
	subFormatFloat = [16]byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71}
	subFormatALaw  = [16]byte{0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71}
)

// rawWAV assembles a mono RIFF/WAVE file by hand. A non-nil subFormat
// writes a WAVE_FORMAT_EXTENSIBLE fmt chunk.
func rawWAV(t *testing.T, tag uint16, bits int, subFormat *[16]byte, payload []byte) string {
	t.Helper()
	const rate = 15625
	blockAlign := uint16(bits / 8)

	var fmtChunk bytes.Buffer
	le := func(w *bytes.Buffer, v any) {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			t.Fatal(err)
		}
	}
	le(&fmtChunk, tag)
	le(&fmtChunk, uint16(1))
	le(&fmtChunk, uint32(rate))
	le(&fmtChunk, uint32(rate)*uint32(blockAlign))
	le(&fmtChunk, blockAlign)
	le(&fmtChunk, uint16(bits))
	if subFormat != nil {
		le(&fmtChunk, uint16(22))
		le(&fmtChunk, uint16(bits))
		le(&fmtChunk, uint32(4)) // front centre
		fmtChunk.Write(subFormat[:])
	}

	var body bytes.Buffer
	body.WriteString("WAVE")
	body.WriteString("fmt ")
	le(&body, uint32(fmtChunk.Len()))
	body.Write(fmtChunk.Bytes())
	body.WriteString("data")
	le(&body, uint32(len(payload)))
	body.Write(payload)

	var file bytes.Buffer
	file.WriteString("RIFF")
	le(&file, uint32(body.Len()))
	file.Write(body.Bytes())

	path := filepath.Join(t.TempDir(), "raw.wav")
	if err := os.WriteFile(path, file.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func float32Payload(vals ...float32) []byte {
	b := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(v))
	}
	return b
}

func int16Payload(vals ...int16) []byte {
	b := make([]byte, 2*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint16(b[2*i:], uint16(v))
	}
	return b
}

func TestOpenFloatWAV(t *testing.T) {
	tests := []struct {
		name      string
		tag       uint16
		subFormat *[16]byte
	}{
		{"ieee float", wavFormatFloat, nil},
		{"extensible float", wavFormatExtensible, &subFormatFloat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := rawWAV(t, tt.tag, 32, tt.subFormat, float32Payload(0.5, -0.5, 0, 2))
			buf, err := Open(path)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			if buf.BitDepth != 16 {
				t.Errorf("bit depth = %d, want 16", buf.BitDepth)
			}
			want := []float64{0.5 * 32767, -0.5 * 32767, 0, 32767}
			if len(buf.Data) != len(want) {
				t.Fatalf("got %d samples, want %d", len(buf.Data), len(want))
			}
			for i := range want {
				if buf.Data[i] != want[i] {
					t.Errorf("sample %d = %v, want %v", i, buf.Data[i], want[i])
				}
			}
		})
	}
}

func TestOpenExtensiblePCM(t *testing.T) {
	path := rawWAV(t, wavFormatExtensible, 16, &subFormatPCM, int16Payload(100, -100, 32767))
	buf, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	want := []float64{100, -100, 32767}
	for i := range want {
		if buf.Data[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, buf.Data[i], want[i])
		}
	}
}

func TestOpenRejectsNonPCMWAV(t *testing.T) {
	tests := []struct {
		name      string
		tag       uint16
		bits      int
		subFormat *[16]byte
		payload   []byte
	}{
		{"extensible a-law", wavFormatExtensible, 8, &subFormatALaw, []byte{1, 2, 3, 4}},
		{"a-law tag", 6, 8, nil, []byte{1, 2, 3, 4}},
		{"extensible float 16-bit", wavFormatExtensible, 16, &subFormatFloat, int16Payload(1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := rawWAV(t, tt.tag, tt.bits, tt.subFormat, tt.payload)
			if _, err := Open(path); !errors.Is(err, errs.ErrDecode) {
				t.Fatalf("expected ErrDecode, got %v", err)
			}
		})
	}
}

func writeOgg(t *testing.T, packets ...[]byte) string {
	t.Helper()
	var b bytes.Buffer
	w, err := ogg.NewWriter(&b, 48000, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range packets {
		if err := w.WritePacket(p, 960); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "clip.opus")
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenOpusHeadersOnly(t *testing.T) {
	buf, err := Open(writeOgg(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if buf.SampleRate != 48000 || buf.Channels != 1 || buf.BitDepth != 16 {
		t.Errorf("format = %d Hz %d ch %d bit", buf.SampleRate, buf.Channels, buf.BitDepth)
	}
	if buf.Frames() != 0 {
		t.Errorf("frames = %d, want 0", buf.Frames())
	}
}

func TestOpenOpusCorruptPacket(t *testing.T) {
	// code 3 packet announcing zero frames
	_, err := Open(writeOgg(t, []byte{0x03, 0x00}))
	if !errors.Is(err, errs.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if !errors.Is(err, gopus.ErrInvalidFrameCount) {
		t.Errorf("expected wrapped gopus error, got %v", err)
	}
}
