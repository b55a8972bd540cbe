// SPDX-License-Identifier: EPL-2.0

// Package exteread reads the structure of audio files held in memory.
//
// Two container formats are handled at the byte level: linear PCM WAV,
// decoded into normalized float samples, and MPEG audio (MP3), walked
// frame by frame with every header decoded and its CRC checked. MP3 audio
// itself is not decoded.
//
// # Supported Formats
//
//   - WAV (PCM 8, 16, 24 and 32-bit) via formats/wav
//   - MP3 frame walking via formats/mp3
//   - AIFF (PCM) via formats/aiff
//   - Ogg Vorbis via formats/vorbis
//
// # Quick Start
//
//	clip, err := exteread.WAVFromPath("voice.wav")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(clip.Name, clip.SampleRate, clip.Channels, clip.Duration())
//
//	stream, err := exteread.MP3FromPath("song.mp3")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(stream.Frames), stream.Duration())
//
// DecodeWAV and WalkMP3 do the same over a buffer the caller already holds.
//
// # Loading by Extension
//
// Load picks a PCM decoder from the file extension using the registry
// returned by NewRegistry (wav, wave, aiff, aif and ogg). Unknown extensions
// fail with ErrUnsupportedFormat. LoadWith takes a custom registry:
//
//	reg := exteread.NewRegistry()
//	reg.Register("pcm", myDecoder{})
//	clip, err := exteread.LoadWith(reg, "take.pcm")
//
// # Writing WAV Files
//
// Decoded sets can be written back as canonical PCM WAV:
//
//	out, _ := os.Create("mono.wav")
//	mono, _ := clip.Mono()
//	err := wav.Encode(out, mono, 16)
//
// # Walking MP3 Frames
//
// WalkMP3 and MP3FromPath collect the whole walk. For step by step control,
// with resynchronization past damaged frames or the standard MPEG CRC,
// use the formats/mp3 package directly:
//
//	for frame, err := range mp3.Frames(buf, mp3.WithResync(true)) {
//	    if err != nil {
//	        break
//	    }
//	    fmt.Println(frame.Offset, frame.Header)
//	}
//
// See the individual subpackages for more detailed documentation.
package exteread
