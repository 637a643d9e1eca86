// This file is part of go-video-preview.
//
// go-video-preview is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-video-preview is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-video-preview.  If not, see <https://www.gnu.org/licenses/>.

//go:build linux

// The preview command displays a moving test pattern in a preview window.
// It is the reference wiring of a frame producer, the preview and an
// optional raw output sink.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/video-system/go-video-preview/logger"
	"github.com/video-system/go-video-preview/osd"
	"github.com/video-system/go-video-preview/output"
	"github.com/video-system/go-video-preview/preview"
	"github.com/video-system/go-video-preview/preview/glpreview"
	"github.com/video-system/go-video-preview/testsrc"
)

func main() {
	configPath := flag.String("config", "", "path to options yaml")
	width := flag.Int("width", 1280, "frame width")
	height := flag.Int("height", 720, "frame height")
	frames := flag.Int("frames", 0, "stop after this many frames (0 = run until the window closes)")
	noOverlay := flag.Bool("no-overlay", false, "disable the frame counter overlay")
	sink := flag.String("output", "", "also push raw frames to this file ('-' for stdout)")
	flag.Parse()

	logger.SetEcho(os.Stderr)

	if err := run(*configPath, *width, *height, *frames, !*noOverlay, *sink); err != nil {
		fmt.Fprintf(os.Stderr, "preview: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, width int, height int, frames int, withOverlay bool, sink string) error {
	opts := preview.DefaultOptions()
	if configPath != "" {
		var err error
		opts, err = preview.LoadOptions(configPath)
		if err != nil {
			return err
		}
	}

	info := preview.StreamInfo{
		Width:  width,
		Height: height,
		Stride: width,
	}

	src, err := testsrc.NewSource(info)
	if err != nil {
		return err
	}
	defer src.Close()

	pv, err := glpreview.New(opts)
	if err != nil {
		return err
	}
	defer pv.Destroy()

	if maxW, maxH := pv.MaxImageSize(); maxW > 0 && (width > maxW || height > maxH) {
		return fmt.Errorf("%dx%d frames exceed the GPU limit of %dx%d", width, height, maxW, maxH)
	}

	pv.SetDoneCallback(src.Done)

	var out output.Output
	if sink != "" {
		out, err = output.Open("file", sink)
		if err != nil {
			return err
		}
		defer out.Close()
	}

	logger.Logf("preview", "%dx%d test pattern", width, height)

	start := time.Now()
	tick := time.NewTicker(33 * time.Millisecond)
	defer tick.Stop()

	for n := 0; frames == 0 || n < frames; n++ {
		if pv.Quit() {
			break
		}

		handle, data, err := src.Next()
		if err != nil {
			return err
		}

		if withOverlay && n%30 == 0 {
			img := osd.Text([]string{
				fmt.Sprintf("frame %05d", n),
				fmt.Sprintf("%dx%d  %.1fs", width, height, time.Since(start).Seconds()),
			})
			b := img.Bounds()
			if err := pv.SetOverlay(osd.FitRGBA(img, b.Dx(), b.Dy()), b.Dx(), b.Dy()); err != nil {
				return err
			}
		}

		if err := pv.Show(handle, data, info); err != nil {
			return err
		}

		if out != nil {
			if err := out.Push(data, time.Since(start).Microseconds(), 0); err != nil {
				return err
			}
		}

		pv.SetInfoText(fmt.Sprintf("preview %05d", n))

		<-tick.C
	}

	return nil
}
