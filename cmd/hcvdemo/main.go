// Command hcvdemo decomposes colours into hue, chroma and value.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/hcv"
)

func main() {
	var (
		colours = flag.String("colour", "#FF8000,teal,grey", "comma separated colours (#RGB, #RRGGBB or CSS names)")
		asJSON  = flag.Bool("json", false, "print each colour as JSON")
		debug   = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	if *debug {
		hcv.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	for _, s := range strings.Split(*colours, ",") {
		rgb, err := hcv.ParseRGB[uint8](s)
		if err != nil {
			log.Fatalf("Failed to parse %q: %v", s, err)
		}
		c := hcv.HCVFromRGB(rgb)
		if *asJSON {
			out, err := json.Marshal(c)
			if err != nil {
				log.Fatalf("Failed to encode %q: %v", s, err)
			}
			fmt.Println(string(out))
			continue
		}
		describe(strings.TrimSpace(s), rgb, c)
	}
}

func describe(name string, rgb hcv.RGB[uint8], c hcv.HCV) {
	fmt.Printf("%s %s\n", name, rgb.Hex())
	if hue, ok := c.Hue(); ok {
		fmt.Printf("  hue      %v (%v)\n", hue, hue.Angle())
	} else {
		fmt.Printf("  hue      none\n")
	}
	fmt.Printf("  sum      %v\n", c.Sum())
	fmt.Printf("  chroma   %v\n", c.Chroma())
	for _, attr := range hcv.ScalarAttributes() {
		fmt.Printf("  %-8s %v\n", strings.ToLower(attr.String()), c.ScalarAttribute(attr))
	}

	hue, ok := c.Hue()
	if !ok {
		return
	}
	back, ok := hue.RGBForSumAndChroma(c.Sum(), c.Chroma())
	if !ok {
		hcv.Logger().Warn("reconstruction failed", "colour", name)
		return
	}
	fmt.Printf("  rebuilt  %s\n", hcv.ConvertRGB[uint8](back).Hex())
	fmt.Printf("  maximum  %s\n", hcv.ConvertRGB[uint8](hue.MaxChromaRGB()).Hex())
}
