// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/exteread/formats/vorbis"
	"github.com/ik5/exteread/formats/wav"
)

// Example decodes the bundled one second test tone.
func Example() {
	data, err := os.ReadFile("testdata/test.ogg")
	if err != nil {
		log.Fatal(err)
	}

	set, err := vorbis.Decode(data)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Sample Rate: %d Hz\n", set.SampleRate)
	fmt.Printf("Channels: %d\n", set.Channels)

	// Output:
	// Sample Rate: 44100 Hz
	// Channels: 1
}

// ExampleReadInfo prints the header fields of a stream.
func ExampleReadInfo() {
	data, err := os.ReadFile("testdata/test.ogg")
	if err != nil {
		log.Fatal(err)
	}

	info, err := vorbis.ReadInfo(data)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d Hz, %d channel(s), nominal %d bps, %d comments\n",
		info.SampleRate, info.Channels, info.Bitrate.Nominal, len(info.Comments.Comments))

	// Output:
	// 44100 Hz, 1 channel(s), nominal 96000 bps, 0 comments
}

// Example_convertToWav writes a decoded stream as 16-bit WAV.
func Example_convertToWav() {
	data, err := os.ReadFile("input.ogg")
	if err != nil {
		log.Fatal(err)
	}

	set, err := vorbis.Decode(data)
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create("output.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	if err := wav.Encode(out, set, 16); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Vorbis converted to WAV")
}
