// Package wavfile writes mono 16-bit PCM RIFF/WAVE files.
package wavfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/youpy/go-wav"
)

const (
	// HeaderSize is the length of the RIFF, fmt and data chunk headers.
	HeaderSize = 44

	Channels      = 1
	BitsPerSample = 16
	BytesPerFrame = Channels * BitsPerSample / 8
)

// Size returns the file length in bytes for n samples.
func Size(n int) int64 {
	return HeaderSize + int64(n)*BytesPerFrame
}

// Encode writes a complete WAV stream holding samples to w. The header is
// sized up front, so w does not need to seek.
func Encode(w io.Writer, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return fmt.Errorf("wavfile: sample rate must be > 0: %d", sampleRate)
	}

	enc := wav.NewWriter(w, uint32(len(samples)), Channels, uint32(sampleRate), BitsPerSample)

	frames := make([]wav.Sample, len(samples))
	for i, s := range samples {
		frames[i].Values[0] = int(s)
	}
	if err := enc.WriteSamples(frames); err != nil {
		return fmt.Errorf("wavfile: failed to write samples: %w", err)
	}

	return nil
}

// WriteFile writes samples to path, creating missing parent directories and
// replacing any existing file. It returns the number of bytes on disk.
func WriteFile(path string, sampleRate int, samples []int16) (size int64, err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("wavfile: failed to create %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("wavfile: error creating %s: %w", path, err)
	}

	defer func() {
		cerr := file.Close()
		if cerr != nil && err == nil {
			err = fmt.Errorf("wavfile: failed to close file: %w", cerr)
		}
	}()

	buf := bufio.NewWriter(file)
	if err := Encode(buf, sampleRate, samples); err != nil {
		return 0, err
	}
	if err := buf.Flush(); err != nil {
		return 0, fmt.Errorf("wavfile: failed to flush %s: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("wavfile: failed to stat %s: %w", path, err)
	}

	return info.Size(), nil
}
