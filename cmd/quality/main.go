// Command quality measures watermark robustness: it embeds a text payload
// into every test image for every parameter set, applies an attack matrix,
// stores the bit error rates in SQLite and renders a chart.
package main

import (
	"context"
	"flag"
	"image"
	"math"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yyyoichi/pairmark"
	"github.com/yyyoichi/pairmark/internal/quality"
	"github.com/yyyoichi/pairmark/internal/report"
	"github.com/yyyoichi/pairmark/internal/store"
	"github.com/yyyoichi/pairmark/textmark"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	var (
		configPath = flag.String("config", "", "YAML experiment matrix, defaults are used when empty")
		imagesGlob = flag.String("images", "", "glob of local test images")
		urlsPath   = flag.String("urls", "", "file with one image URL per line")
		cacheDir   = flag.String("cache", "/tmp/pairmark_http_cache/", "HTTP cache directory for -urls")
		numImages  = flag.Int("n", 10, "maximum number of images to test")
		synth      = flag.Int("synthetic", 2, "number of synthetic images when no other source is given")
		dbPath     = flag.String("db", "quality.db", "SQLite results database")
		chartPath  = flag.String("chart", "quality.html", "HTML chart output, empty to skip")
		debug      = flag.Bool("debug", false, "debug logging")
		human      = flag.Bool("human", true, "human readable logs")
	)
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if *human {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	m, err := loadMatrix(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	var sources []source
	if *imagesGlob != "" {
		s, err := fileSources(*imagesGlob)
		if err != nil {
			log.Fatal().Err(err).Msg("images")
		}
		sources = append(sources, s...)
	}
	if *urlsPath != "" {
		s, err := urlSources(*urlsPath, *cacheDir)
		if err != nil {
			log.Fatal().Err(err).Msg("urls")
		}
		sources = append(sources, s...)
	}
	if len(sources) == 0 {
		sources = syntheticSources(*synth)
	}
	if *numImages > 0 && *numImages < len(sources) {
		sources = sources[:*numImages]
	}

	db, err := store.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("db")
	}
	defer db.Close()

	ctx := context.Background()
	params, attacks := m.params(), m.attacks()
	log.Info().
		Int("images", len(sources)).
		Int("params", len(params)).
		Int("attacks", len(attacks)).
		Msg("starting quality evaluation")

	r := runner{db: db, m: m, mark: textmark.Encode(m.Text)}
	start := time.Now()
	total, matched := 0, 0
	for i, src := range sources {
		log.Info().Int("at", i+1).Int("of", len(sources)).Str("image", src.uri).Msg("testing image")
		img, err := src.load()
		if err != nil {
			log.Error().Err(err).Str("image", src.uri).Msg("skipping image")
			continue
		}
		img = fit(img, m.Width, m.Height)
		imageID, err := db.InsertImage(src.uri, m.Width, m.Height)
		if err != nil {
			log.Fatal().Err(err).Msg("db")
		}

		batch := pairmark.NewBatch(img)
		for _, p := range params {
			n, ok, err := r.run(ctx, batch, img, imageID, p)
			if err != nil {
				log.Error().Err(err).Str("image", src.uri).Msg("run failed")
				continue
			}
			total += n
			matched += ok
		}
	}

	log.Info().
		Int("total", total).
		Int("matched", matched).
		Dur("elapsed", time.Since(start)).
		Msg("results")

	stats, err := db.GetAttackStats()
	if err != nil {
		log.Fatal().Err(err).Msg("stats")
	}
	for _, s := range stats {
		log.Info().
			Str("attack", s.Attack).
			Float64("threshold", s.Threshold).
			Int("tests", s.TotalTests).
			Float64("match_rate", s.MatchRate).
			Float64("avg_ber", s.AvgBER).
			Float64("avg_psnr", s.AvgPSNR).
			Msg("summary")
	}

	if *chartPath != "" {
		f, err := os.Create(*chartPath)
		if err != nil {
			log.Fatal().Err(err).Msg("chart")
		}
		defer f.Close()
		if err := report.BERChart(f, stats); err != nil {
			log.Fatal().Err(err).Msg("chart")
		}
		log.Info().Str("chart", *chartPath).Msg("generated")
	}
}

type runner struct {
	db   *store.DB
	m    matrix
	mark []bool
}

// run embeds with one parameter set and evaluates every attack. It returns
// the number of attacks tested and how many matched.
func (r runner) run(ctx context.Context, batch *pairmark.Batch, original image.Image, imageID int64, p param) (int, int, error) {
	opts, err := p.options(r.m.Key)
	if err != nil {
		return 0, 0, err
	}
	codec, err := pairmark.New(opts...)
	if err != nil {
		return 0, 0, err
	}
	paramID, err := r.db.InsertParam(store.Param{
		BlockSize:  p.blockSize,
		Threshold:  p.threshold,
		ECC:        codec.Scheme().Name(),
		UsageRatio: 1,
	})
	if err != nil {
		return 0, 0, err
	}

	marked, res, err := batch.Embed(ctx, r.mark, opts...)
	if err != nil {
		return 0, 0, err
	}
	psnr, err := quality.PSNR(original, marked)
	if err != nil {
		return 0, 0, err
	}
	if math.IsInf(psnr, 1) {
		psnr = 100
	}

	tested, matched := 0, 0
	for _, a := range r.m.attacks() {
		attacked, err := a.Apply(marked)
		if err != nil {
			return tested, matched, err
		}
		got, err := codec.Extract(ctx, attacked, len(r.mark))
		if err != nil {
			return tested, matched, err
		}
		v := pairmark.Verify(r.mark, got, r.m.Tolerance)
		if _, err := r.db.InsertResult(&store.Result{
			ImageID:     imageID,
			ParamID:     paramID,
			Attack:      a.Name(),
			PayloadBits: res.Payload,
			CodeBits:    res.Requested,
			AppliedBits: res.Applied,
			BitErrors:   v.BitErrors,
			BER:         v.BER,
			Match:       v.Match,
			PSNR:        psnr,
		}); err != nil {
			return tested, matched, err
		}
		log.Debug().
			Int("block", p.blockSize).
			Float64("t", p.threshold).
			Str("ecc", codec.Scheme().Name()).
			Str("attack", a.Name()).
			Float64("ber", v.BER).
			Bool("match", v.Match).
			Float64("psnr", psnr).
			Msg("result")
		tested++
		if v.Match {
			matched++
		}
	}
	return tested, matched, nil
}
