// Command rgb runs a headless DMG session: load a ROM, execute it for
// a fixed number of frames, and write the final frame out as a PNG.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sighmoe/rgb/internal/config"
	"github.com/sighmoe/rgb/pkg/emulator"
	"github.com/sighmoe/rgb/pkg/frameio"
	"github.com/sighmoe/rgb/pkg/romimage"
)

func main() {
	os.Exit(run())
}

func run() int {
	romPath := flag.String("rom", "", "the ROM file to load")
	bootPath := flag.String("boot", "", "the boot ROM file to load (skipped if empty)")
	saveDir := flag.String("save-dir", ".", "directory battery RAM is loaded from and saved to")
	frames := flag.Int("frames", 60, "number of frames to run before exiting")
	outPath := flag.String("out", "", "PNG path to write the final frame to (skipped if empty)")
	flag.Parse()

	logger := logrus.StandardLogger()

	if *romPath == "" {
		logger.Error("rgb: -rom is required")
		return 2
	}

	rom, err := romimage.Load(*romPath)
	if err != nil {
		return exitCode(logger, err)
	}

	var bootROM []byte
	if *bootPath != "" {
		bootROM, err = romimage.Load(*bootPath)
		if err != nil {
			return exitCode(logger, err)
		}
	}

	e, err := emulator.New(rom, bootROM, config.WithLogger(logger), config.WithSaveDir(*saveDir))
	if err != nil {
		return exitCode(logger, err)
	}

	if err := e.LoadBatteryRAM(); err != nil {
		logger.WithError(err).Warn("rgb: battery RAM not loaded")
	}

	var frame = e.RunFrame()
	for i := 1; i < *frames; i++ {
		frame = e.RunFrame()
	}

	if err := e.SaveBatteryRAM(); err != nil {
		logger.WithError(err).Warn("rgb: battery RAM not saved")
	}

	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			logger.WithError(err).Error("rgb: creating output image")
			return 2
		}
		defer f.Close()
		if err := frameio.EncodePNG(f, frame); err != nil {
			logger.WithError(err).Error("rgb: encoding output image")
			return 2
		}
	}

	return 0
}

// exitCode maps a *config.LoadError to its documented process exit
// code, falling back to 1 for anything unexpected.
func exitCode(logger logrus.FieldLogger, err error) int {
	var loadErr *config.LoadError
	if e, ok := err.(*config.LoadError); ok {
		loadErr = e
	}
	if loadErr != nil {
		logger.Error(fmt.Sprintf("rgb: %v", loadErr))
		return loadErr.Code
	}
	logger.Error(fmt.Sprintf("rgb: %v", err))
	return 1
}
