package media

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
)

// ConvertOptions controls the canonical audio target format.
type ConvertOptions struct {
	SampleRate int      // output sample rate in Hz
	Channels   int      // output channel count
	Codec      string   // output audio codec, e.g. "pcm_s16le"
	ExtraArgs  []string // appended raw ffmpeg arguments
}

// FFmpegConverter strips video streams and resamples media into the
// canonical waveform the recognition engine consumes.
type FFmpegConverter struct {
	binPath string
	opts    ConvertOptions
	runner  commandRunner
}

func NewConverter(binPath string, opts ConvertOptions) *FFmpegConverter {
	if binPath == "" {
		binPath = "ffmpeg"
	}
	if opts.SampleRate <= 0 {
		opts.SampleRate = 16000
	}
	if opts.Channels <= 0 {
		opts.Channels = 1
	}
	if opts.Codec == "" {
		opts.Codec = "pcm_s16le"
	}
	return &FFmpegConverter{binPath: binPath, opts: opts, runner: &execRunner{}}
}

// ToCanonicalWAV converts inputPath into a mono 16kHz 16-bit PCM WAV at
// outputPath, overwriting any existing file there. A nonzero ffmpeg exit is
// returned as an error; stderr goes to the log only.
func (c *FFmpegConverter) ToCanonicalWAV(ctx context.Context, inputPath, outputPath string) error {
	if _, err := os.Stat(inputPath); err != nil {
		return gerror.Wrap(err, "input media is not accessible")
	}

	args := c.buildArgs(inputPath, outputPath)
	result, err := c.runner.Run(ctx, c.binPath, args...)
	if err != nil {
		g.Log().Errorf(ctx, "ffmpeg conversion failed (exit=%d): %s",
			result.ExitCode, strings.TrimSpace(result.Stderr))
		return gerror.Wrap(err, "ffmpeg conversion failed")
	}

	if _, err := os.Stat(outputPath); err != nil {
		return gerror.Wrap(err, "ffmpeg completed but output file is missing")
	}
	return nil
}

func (c *FFmpegConverter) buildArgs(inputPath, outputPath string) []string {
	args := []string{
		"-hide_banner",
		"-nostdin",
		"-y",
		"-i", inputPath,
		"-vn",
		"-ac", strconv.Itoa(c.opts.Channels),
		"-ar", strconv.Itoa(c.opts.SampleRate),
		"-c:a", c.opts.Codec,
	}
	if len(c.opts.ExtraArgs) > 0 {
		args = append(args, c.opts.ExtraArgs...)
	}
	return append(args, outputPath)
}

// NewConverterForTests constructs a converter with an injected runner.
func NewConverterForTests(binPath string, opts ConvertOptions, runner commandRunner) *FFmpegConverter {
	conv := NewConverter(binPath, opts)
	conv.runner = runner
	return conv
}
