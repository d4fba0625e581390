package speech

import (
	"fmt"
	"os"
	"path/filepath"
)

// One MPEG-1 Layer III frame at 128 kbps / 44.1 kHz is 417 bytes. The frame
// below carries an all-zero payload, which decodes as silence.
const (
	mp3FrameSize      = 417
	placeholderFrames = 20
)

var mp3FrameHeader = []byte{0xFF, 0xFB, 0x90, 0x00}

// placeholderAudio returns a short run of silent MP3 frames.
func placeholderAudio() []byte {
	frame := make([]byte, mp3FrameSize)
	copy(frame, mp3FrameHeader)

	audio := make([]byte, 0, mp3FrameSize*placeholderFrames)
	for i := 0; i < placeholderFrames; i++ {
		audio = append(audio, frame...)
	}
	return audio
}

// WritePlaceholder writes a silent MP3 file to path, creating parent
// directories as needed.
func WritePlaceholder(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create audio directory: %w", err)
	}
	if err := os.WriteFile(path, placeholderAudio(), 0o644); err != nil {
		return fmt.Errorf("failed to write placeholder audio: %w", err)
	}
	return nil
}
