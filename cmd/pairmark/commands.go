package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/yyyoichi/pairmark"
	"github.com/yyyoichi/pairmark/internal/quality"
	"github.com/yyyoichi/pairmark/logomark"
	"github.com/yyyoichi/pairmark/textmark"
)

func embedMain(ctx context.Context, args []string) error {
	var (
		c       codecFlags
		p       payloadFlags
		src     string
		dst     string
		jpegQ   int
		fs      = flag.NewFlagSet("embed", flag.ExitOnError)
		started = time.Now()
	)
	c.register(fs)
	p.registerLogo(fs)
	fs.StringVar(&src, "src", "", "input image path")
	fs.StringVar(&dst, "dst", "", "output image path, .png or .jpg")
	fs.IntVar(&jpegQ, "quality", 95, "jpeg quality for .jpg output")
	fs.StringVar(&p.text, "text", "", "text payload")
	fs.StringVar(&p.logo, "logo", "", "logo image payload")
	_ = fs.Parse(args)
	setupLog(c.verbose, c.debug, c.human)

	if src == "" || dst == "" {
		return errors.New("-src and -dst are required")
	}
	payload, err := p.bits()
	if err != nil {
		return err
	}
	opts, err := c.options()
	if err != nil {
		return err
	}
	img, err := loadImage(src)
	if err != nil {
		return err
	}

	base := filepath.Base(src)
	log.Debug().Str("image", src).Int("payload", len(payload)).Msg(base)
	marked, res, err := pairmark.Embed(ctx, img, payload, opts...)
	if err != nil {
		return err
	}
	if res.Shortfall() {
		log.Warn().
			Int("requested", res.Requested).
			Int("applied", res.Applied).
			Msg("image too small, the payload tail will read as zero")
	}
	if err := saveImage(dst, marked, jpegQ); err != nil {
		return err
	}

	ev := log.Info().
		Int64("duration(ms)", time.Since(started).Milliseconds()).
		Int("payload", res.Payload).
		Int("applied", res.Applied).
		Str("dst", dst)
	if psnr, err := quality.PSNR(img, marked); err == nil {
		ev = ev.Float64("psnr", psnr)
	}
	ev.Msg(base)
	return nil
}

func extractMain(ctx context.Context, args []string) error {
	var (
		c   codecFlags
		p   payloadFlags
		src string
		n   int
		dst string
		fs  = flag.NewFlagSet("extract", flag.ExitOnError)
	)
	c.register(fs)
	p.registerLogo(fs)
	fs.StringVar(&src, "src", "", "watermarked image path")
	fs.IntVar(&p.textLen, "text-len", 0, "length of the text payload in bytes")
	fs.IntVar(&n, "bits", 0, "length of a raw payload in bits, printed as 0/1")
	fs.StringVar(&dst, "logo-out", "", "write a logo payload to this image")
	_ = fs.Parse(args)
	setupLog(c.verbose, c.debug, c.human)

	if src == "" {
		return errors.New("-src is required")
	}
	opts, err := c.options()
	if err != nil {
		return err
	}
	img, err := loadImage(src)
	if err != nil {
		return err
	}

	switch {
	case p.textLen > 0:
		bits, err := pairmark.Extract(ctx, img, p.textLen*8, opts...)
		if err != nil {
			return err
		}
		fmt.Println(textmark.DecodeTrim(bits))
	case dst != "":
		bits, err := pairmark.Extract(ctx, img, p.logoW*p.logoH, opts...)
		if err != nil {
			return err
		}
		if err := saveImage(dst, logomark.Image(bits, p.logoW, p.logoH), 100); err != nil {
			return err
		}
		log.Info().Str("dst", dst).Msg(filepath.Base(src))
	case n > 0:
		bits, err := pairmark.Extract(ctx, img, n, opts...)
		if err != nil {
			return err
		}
		buf := make([]byte, len(bits))
		for i, v := range bits {
			buf[i] = '0'
			if v {
				buf[i] = '1'
			}
		}
		fmt.Println(string(buf))
	default:
		return errors.New("one of -text-len, -logo-out or -bits is required")
	}
	return nil
}

func verifyMain(ctx context.Context, args []string) error {
	var (
		c         codecFlags
		p         payloadFlags
		src       string
		tolerance float64
		fs        = flag.NewFlagSet("verify", flag.ExitOnError)
	)
	c.register(fs)
	p.registerLogo(fs)
	fs.StringVar(&src, "src", "", "watermarked image path")
	fs.StringVar(&p.text, "text", "", "expected text payload")
	fs.StringVar(&p.logo, "logo", "", "expected logo image")
	fs.Float64Var(&tolerance, "tolerance", 0.1, "largest bit error rate that still matches")
	_ = fs.Parse(args)
	setupLog(c.verbose, c.debug, c.human)

	if src == "" {
		return errors.New("-src is required")
	}
	want, err := p.bits()
	if err != nil {
		return err
	}
	opts, err := c.options()
	if err != nil {
		return err
	}
	img, err := loadImage(src)
	if err != nil {
		return err
	}

	got, err := pairmark.Extract(ctx, img, len(want), opts...)
	if err != nil {
		return err
	}
	v := pairmark.Verify(want, got, tolerance)
	fmt.Printf("bits=%d errors=%d ber=%.4f match=%t\n", v.TotalBits, v.BitErrors, v.BER, v.Match)
	log.Info().
		Int("bits", v.TotalBits).
		Int("errors", v.BitErrors).
		Float64("ber", v.BER).
		Bool("match", v.Match).
		Msg(filepath.Base(src))
	if !v.Match {
		return errMismatch
	}
	return nil
}

// bits returns the text or logo payload; exactly one must be set.
func (p *payloadFlags) bits() ([]bool, error) {
	switch {
	case p.text != "" && p.logo != "":
		return nil, errors.New("-text and -logo are exclusive")
	case p.text != "":
		return textmark.Encode(p.text), nil
	case p.logo != "":
		logo, err := loadImage(p.logo)
		if err != nil {
			return nil, err
		}
		if p.logoThreshold > 255 {
			return nil, fmt.Errorf("-logo-threshold must be at most 255, got %d", p.logoThreshold)
		}
		return logomark.Encode(logo,
			logomark.WithSize(p.logoW, p.logoH),
			logomark.WithThreshold(uint8(p.logoThreshold)),
		), nil
	default:
		return nil, errors.New("one of -text or -logo is required")
	}
}
