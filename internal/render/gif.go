package render

import (
	"fmt"
	"image"
	"image/gif"
	"os"
)

// writeGIF assembles the ordered frame sequence into a looping animation.
// delay is in 100ths of a second per frame.
func writeGIF(path string, frames []*image.Paletted, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to assemble")
	}

	anim := &gif.GIF{
		Image:     frames,
		Delay:     make([]int, len(frames)),
		LoopCount: 0, // loop forever
	}
	for i := range anim.Delay {
		anim.Delay[i] = delay
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return gif.EncodeAll(file, anim)
}
