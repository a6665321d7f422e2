package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"
	"time"

	"periph.io/x/host/v3"
	"tinygo.org/x/tinyfont/proggy"

	display "github.com/BeatGlow/n70display"
	"github.com/BeatGlow/n70display/conn"
	"github.com/BeatGlow/n70display/draw"
	"github.com/BeatGlow/n70display/font"
	"github.com/BeatGlow/n70display/pixel"
)

func main() {
	modeFlag := flag.Int("mode", 16, "Color depth in bits (12, 16 or 18)")
	rotateFlag := flag.String("rotate", "", "Display orientation")
	fontFlag := flag.String("font", "small", "Text font (small, medium or large)")
	dataFlag := flag.String("data", strings.Join(conn.DefaultParallelConfig.Data[:], ","), "Data GPIO pins D0-D7, comma separated")
	rsPinFlag := flag.String("rs", conn.DefaultParallelConfig.RS, "Register select GPIO pin")
	wrPinFlag := flag.String("wr", conn.DefaultParallelConfig.WR, "Write strobe GPIO pin")
	rdPinFlag := flag.String("rd", conn.DefaultParallelConfig.RD, "Read strobe GPIO pin")
	csPinFlag := flag.String("cs", conn.DefaultParallelConfig.CS, "Chip select GPIO pin (empty if tied low)")
	resetPinFlag := flag.String("reset", conn.DefaultParallelConfig.Reset, "Reset GPIO pin")
	dryRunFlag := flag.Bool("dry-run", false, "Log bus traffic instead of driving GPIO pins")
	flag.Parse()

	config := display.DefaultConfig
	switch *modeFlag {
	case 12:
		config.ColorMode = display.Color12Bit
	case 16:
		config.ColorMode = display.Color16Bit
	case 18:
		config.ColorMode = display.Color18Bit
	default:
		fatal(fmt.Errorf("invalid color mode %d specified", *modeFlag))
	}

	switch *rotateFlag {
	case "", "no", "0", "portrait":
		config.Orientation = display.Portrait
	case "90", "landscape":
		config.Orientation = display.Landscape
	case "180", "flip":
		config.Orientation = display.PortraitReversed
	case "270":
		config.Orientation = display.LandscapeReversed
	default:
		fatal(fmt.Errorf("invalid rotation %q specified", *rotateFlag))
	}

	switch *fontFlag {
	case "small":
		config.Font = font.Small
	case "medium":
		config.Font = font.Medium
	case "large":
		config.Font = font.Large
	default:
		fatal(fmt.Errorf("invalid font %q specified", *fontFlag))
	}

	var (
		bus display.Bus
		err error
	)
	if *dryRunFlag {
		bus = &conn.Recorder{Verbose: true}
	} else {
		if _, err = host.Init(); err != nil {
			fatal(err)
		}

		pins := &conn.ParallelConfig{
			RS:    *rsPinFlag,
			WR:    *wrPinFlag,
			RD:    *rdPinFlag,
			CS:    *csPinFlag,
			Reset: *resetPinFlag,
		}
		data := strings.Split(*dataFlag, ",")
		if len(data) != len(pins.Data) {
			fatal(fmt.Errorf("expected %d data pins, got %d", len(pins.Data), len(data)))
		}
		for i, name := range data {
			pins.Data[i] = strings.TrimSpace(name)
		}
		if bus, err = conn.OpenParallel(pins); err != nil {
			fatal(err)
		}
	}
	fmt.Printf("using connection: %s\n", bus)

	output, err := display.Open(bus, &config)
	if err != nil {
		fatal(err)
	}
	defer output.Close()
	fmt.Printf("using driver: %s\n", output)

	if id, err := output.ReadDisplayID(); err != nil {
		fatal(err)
	} else {
		fmt.Printf("display id: % x\n", id)
	}

	if err = output.ClearScreen(pixel.Black); err != nil {
		fatal(err)
	}

	var (
		w, h   = output.Width(), output.Height()
		line   = output.Font().Height()
		banner = image.Rect(0, 2*line, w, h-4*line)
	)
	output.SetTextColors(pixel.Yellow, pixel.Black)
	if err = output.PutStringCentered("N70 display", 0); err != nil {
		fatal(err)
	}
	output.SetTextColors(pixel.White, pixel.Black)
	if err = output.PutStringClearEOL(fmt.Sprintf("%dx%d %s", w, h, output.ColorMode()), 0, line); err != nil {
		fatal(err)
	}
	if err = draw.Fit(output, banner, gradientImage(64, 48)); err != nil {
		fatal(err)
	}
	if err = output.WriteLine(&proggy.TinySZ8pt7b, 2, int16(h-2*line-2), "tinyfont says hi", pixel.Cyan); err != nil {
		fatal(err)
	}

	if *dryRunFlag {
		return
	}

	fmt.Println("hit control-c to stop...")
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	start := time.Now()
	for {
		uptime := time.Since(start).Truncate(time.Second)
		if err = output.PutStringClearEOL("up "+uptime.String(), 0, h-line); err != nil {
			fatal(err)
		}
		<-ticker.C
	}
}

// gradientImage returns a w by h test card.
func gradientImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 0xFF / w),
				G: uint8(y * 0xFF / h),
				B: uint8((x + y) * 0xFF / (w + h)),
				A: 0xFF,
			})
		}
	}
	return img
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
